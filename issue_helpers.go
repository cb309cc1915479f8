package godxf

// IssueAt creates an Issue for the given tag with provided code, message and
// params map. This is a convenience helper to improve readability at call
// sites with many parameters.
func IssueAt(tag Tag, code, msg string, params map[string]any) Issue {
	return Issue{Line: tag.Line, GroupCode: tag.Code, Code: code, Message: msg, Params: params}
}
