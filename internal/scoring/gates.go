package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/resume-scorer/internal/types"
)

// gateCap is the ceiling applied to the overall score when any gate
// fails. Applied after the weighted sum and before final rounding.
const gateCap = 60.0

const gateCapImpact = "overall score capped at 60"

// evaluateGates builds one gate per hard requirement plus, when the job
// names a years-of-experience requirement, a gate on the number of
// experience entries.
func evaluateGates(reqs *types.JobRequirements, resumeSkills, experience []string) []types.GateResult {
	gates := make([]types.GateResult, 0, len(reqs.HardRequirements)+1)

	for _, req := range reqs.HardRequirements {
		gates = append(gates, evaluateHardRequirementGate(req, resumeSkills, experience))
	}

	if reqs.ExperienceYears != nil {
		gates = append(gates, evaluateExperienceCountGate(*reqs.ExperienceYears, len(experience)))
	}

	return gates
}

// evaluateHardRequirementGate passes when the requirement text appears
// (case-insensitive) inside any resume skill or any experience line.
func evaluateHardRequirementGate(req string, resumeSkills, experience []string) types.GateResult {
	reqLower := strings.ToLower(req)

	for _, skill := range resumeSkills {
		if strings.Contains(strings.ToLower(skill), reqLower) {
			return types.GateResult{
				Rule:    "hard_requirement: " + req,
				Passed:  true,
				Details: fmt.Sprintf("%q found in resume skills", req),
			}
		}
	}
	for _, line := range experience {
		if strings.Contains(strings.ToLower(line), reqLower) {
			return types.GateResult{
				Rule:    "hard_requirement: " + req,
				Passed:  true,
				Details: fmt.Sprintf("%q found in experience", req),
			}
		}
	}

	return types.GateResult{
		Rule:    "hard_requirement: " + req,
		Passed:  false,
		Details: fmt.Sprintf("%q not found in resume skills or experience", req),
		Impact:  gateCapImpact,
	}
}

// evaluateExperienceCountGate requires at least min(years/2, 3)
// experience entries for a stated years-of-experience requirement.
func evaluateExperienceCountGate(years, experienceCount int) types.GateResult {
	needed := math.Min(float64(years)/2, 3)

	if float64(experienceCount) >= needed {
		return types.GateResult{
			Rule:    "minimum_experience_years",
			Passed:  true,
			Details: fmt.Sprintf("%d experience entries for a %d-year requirement", experienceCount, years),
		}
	}
	return types.GateResult{
		Rule:    "minimum_experience_years",
		Passed:  false,
		Details: fmt.Sprintf("%d experience entries for a %d-year requirement (need at least %.1f)", experienceCount, years, needed),
		Impact:  gateCapImpact,
	}
}

// anyGateFailed reports whether at least one gate did not pass.
func anyGateFailed(gates []types.GateResult) bool {
	for _, g := range gates {
		if !g.Passed {
			return true
		}
	}
	return false
}
