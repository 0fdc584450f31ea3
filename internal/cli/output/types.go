package output

// LintSummary counts the issues of a lint run.
type LintSummary struct {
	FilesAnalyzed int `json:"files_analyzed"`
	FilesCached   int `json:"files_cached"`
	ParseFailures int `json:"parse_failures"`
	TotalIssues   int `json:"total_issues"`
	Errors        int `json:"errors"`
	Warnings      int `json:"warnings"`
	Info          int `json:"info"`
	Hints         int `json:"hints"`
}

// LintOutput is the JSON report of a lint run.
type LintOutput struct {
	RunID   string           `json:"run_id"`
	Summary LintSummary      `json:"summary"`
	Files   []LintFileResult `json:"files"`
}

// LintFileResult holds the issues of one file.
type LintFileResult struct {
	Path        string           `json:"path"`
	Language    string           `json:"language"`
	State       string           `json:"state"`
	Diagnostics []LintDiagnostic `json:"diagnostics"`
}

// LintDiagnostic is one issue.
type LintDiagnostic struct {
	RuleID    string           `json:"rule_id"`
	Severity  string           `json:"severity"`
	Message   string           `json:"message"`
	Line      int              `json:"line"`
	Column    int              `json:"column,omitempty"`
	EndLine   int              `json:"end_line,omitempty"`
	EndColumn int              `json:"end_column,omitempty"`
	DocURL    string           `json:"doc_url,omitempty"`
	Related   []LintRelatedLoc `json:"related,omitempty"`
}

// LintRelatedLoc is a secondary location of an issue.
type LintRelatedLoc struct {
	Path    string `json:"path"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Message string `json:"message"`
}
