package model

// StyleIssue is one checkstyle finding located in a source file.
type StyleIssue struct {
	IssueType string
	FileName  string
	Line      int
	Column    int
	Message   string
}

// IssueGroup holds every finding of one issue type, in source order.
type IssueGroup struct {
	IssueType string
	Issues    []StyleIssue
}
