package list

// ToolInfo describes a tool. It is used for template rendering.
type ToolInfo struct {
	ID      string   // Tool ID passed to --tool
	Name    string   // Display name
	Pattern string   // Glob pattern of report files the tool usually writes
	Console bool     // Whether the tool can parse console logs
	Help    string   // Description of the input format
	Members []string // IDs of suite members
}
