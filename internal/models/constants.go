package models

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-pro"

// EndpointGenerate is the generateContent endpoint. The model name is
// interpolated at request time; the API key travels as a query parameter.
const EndpointGenerate = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent"

// EmptyAnswerPlaceholder is shown instead of a structurally valid but empty
// answer so the transcript never contains a blank bot turn.
const EmptyAnswerPlaceholder = "🤖 Gemini returned an empty response."

// TransportFailureText is the fixed content of the single bot turn appended
// when a request fails. The session stays usable; the user may resubmit.
const TransportFailureText = "❌ Failed to fetch response from Gemini."

// ContextSeparator joins the user's input with the extracted document text
// when composing an augmented prompt.
const ContextSeparator = "\n\nHere is some context from the uploaded PDF:\n"

// DefaultHeaders returns the headers sent with every generate request.
func DefaultHeaders() map[string]string {
	return map[string]string{
		"Content-Type": "application/json",
		"User-Agent":   "docchat/0.1",
	}
}
