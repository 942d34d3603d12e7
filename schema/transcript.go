package schema

import "strings"

// TranscriptResult is the tagged outcome of a transcription attempt. Upstream
// speech-to-text tooling historically encoded failures as bracketed sentinel
// strings inside the transcript itself ("[No speech detected]"); those are
// classified here once, at the boundary, so that only confirmed text ever
// reaches the analysis engine.
type TranscriptResult struct {
	text   string
	reason string
	ok     bool
}

// TranscriptOK wraps a successful transcription.
func TranscriptOK(text string) TranscriptResult {
	return TranscriptResult{text: text, ok: true}
}

// TranscriptErr wraps a failed transcription with a human-readable reason.
func TranscriptErr(reason string) TranscriptResult {
	return TranscriptResult{reason: reason}
}

// Text returns the transcript text and whether the transcription succeeded.
func (t TranscriptResult) Text() (string, bool) {
	return t.text, t.ok
}

// Reason returns the failure reason for an unsuccessful transcription.
func (t TranscriptResult) Reason() string {
	return t.reason
}

// ClassifyTranscript inspects raw transcript text for the bracketed sentinel
// convention used by speech-to-text frontends. A transcript that starts with
// "[" and mentions an error or a detection failure is treated as a failed
// transcription rather than genuine content.
func ClassifyTranscript(raw string) TranscriptResult {
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "[") {
		lowered := strings.ToLower(trimmed)
		if strings.Contains(lowered, "error") || strings.Contains(lowered, "detected") || strings.Contains(lowered, "unable to transcribe") {
			return TranscriptErr(strings.Trim(trimmed, "[]"))
		}
	}
	return TranscriptOK(raw)
}
