package formatter

// GeneralIssueFormatter renders an issue with its snippet, underline and
// optional suggestion and note blocks.
type GeneralIssueFormatter struct{}

func (f *GeneralIssueFormatter) IssueTemplate() string {
	return `{{header .Rule .Severity .MaxLineNumWidth .Filename .StartLine .StartColumn}}` +
		`{{snippet .SnippetLines .StartLine .EndLine .MaxLineNumWidth .CommonIndent .Padding}}` +
		`{{underlineAndMessage .Message .Padding .StartLine .EndLine .StartColumn .EndColumn .SnippetLines .CommonIndent}}` +
		`{{if .Suggestion}}{{suggestion .Suggestion .Padding .MaxLineNumWidth .StartLine}}{{end}}` +
		`{{if .Note}}{{note .Note}}{{end}}` + "\n"
}

// ComparableTypesFormatter renders comparable-types issues; the classified
// operand kinds are shown in the gutter right below the message.
type ComparableTypesFormatter struct{}

func (f *ComparableTypesFormatter) IssueTemplate() string {
	return `{{header .Rule .Severity .MaxLineNumWidth .Filename .StartLine .StartColumn}}` +
		`{{snippet .SnippetLines .StartLine .EndLine .MaxLineNumWidth .CommonIndent .Padding}}` +
		`{{underlineAndMessage .Message .Padding .StartLine .EndLine .StartColumn .EndColumn .SnippetLines .CommonIndent}}` +
		`{{if .Note}}{{operandInfo .Padding .Note}}{{end}}` + "\n"
}
