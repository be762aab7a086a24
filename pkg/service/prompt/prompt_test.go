package prompt_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/harsh2b/WellMate/pkg/domain/model/guest"
	"github.com/harsh2b/WellMate/pkg/service/prompt"
)

func TestBuildSystemPrompt(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		got := gt.R1(prompt.BuildSystemPrompt(guest.DefaultPatientInfo())).NoError(t)

		gt.S(t, got).Contains("Dr. Black")
		gt.S(t, got).Contains("The patient's name is Guest, age 0, gender Unknown.")
		gt.S(t, got).Contains("preferred language (English)")
		gt.S(t, got).Contains("{context}")
	})

	t.Run("patient attributes interpolated", func(t *testing.T) {
		got := gt.R1(prompt.BuildSystemPrompt(guest.PatientInfo{
			Name:     "Alice",
			Age:      34,
			Gender:   "Female",
			Language: "Spanish",
		})).NoError(t)

		gt.S(t, got).Contains("The patient's name is Alice, age 34, gender Female.")
		gt.S(t, got).Contains("preferred language (Spanish)")
	})

	t.Run("deterministic", func(t *testing.T) {
		info := guest.DefaultPatientInfo()
		a := gt.R1(prompt.BuildSystemPrompt(info)).NoError(t)
		b := gt.R1(prompt.BuildSystemPrompt(info)).NoError(t)
		gt.Equal(t, a, b)
	})
}
