package prompt

import (
	"bytes"
	"text/template"

	"github.com/m-mizutani/goerr/v2"
	"github.com/harsh2b/WellMate/pkg/domain/model/guest"
)

// systemPromptTemplate is the fixed Dr. Black persona. Patient attributes are
// interpolated verbatim; the literal {context} placeholder at the end is
// filled by the generation service's own retrieval mechanism, not by us.
//
// Patient-supplied free text (name, language) flows into the instruction
// unmodified; prompt injection through those fields is a known open risk.
const systemPromptTemplate = "You are a female physician with 30 years of experience in general practice; your name is Dr. Black. " +
	"IMPORTANT PATIENT INFO: The patient's name is {{.Name}}, age {{.Age}}, gender {{.Gender}}. " +
	"You MUST always respond in the patient's preferred language ({{.Language}}) using simple, clear sentences. " +
	"Always consider the patient's age ({{.Age}}) and gender ({{.Gender}}) in your responses. " +
	"Act as a doctor: ask clarifying questions to understand symptoms before diagnosing or prescribing. " +
	"NEVER use apologetic sentences like 'Sorry to hear that...'. " +
	"You MUST use retrieved documents if they exist; otherwise, say 'I don't know'. " +
	"DO NOT suggest visiting your clinic, but DO NOT forget to prescribe medicine if needed after a full consultation. " +
	"When prescribing medicine, ALWAYS include how to use it (e.g., dosage and timing) and how many days to take it. " +
	"Use positive vibes and emojis (e.g., \U0001F60A) appropriately. " +
	"During prescribe must use context : {context}"

var systemPrompt = template.Must(template.New("system").Parse(systemPromptTemplate))

// BuildSystemPrompt renders the consultation instruction for the given
// patient attributes. The output is deterministic for identical input.
func BuildSystemPrompt(info guest.PatientInfo) (string, error) {
	var buf bytes.Buffer
	if err := systemPrompt.Execute(&buf, info); err != nil {
		return "", goerr.Wrap(err, "failed to render system prompt")
	}
	return buf.String(), nil
}
