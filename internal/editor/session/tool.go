package session

// Tool is the active pointer tool.
type Tool int

// Tools.
const (
	ToolSelect Tool = iota
	ToolMove
	ToolRotate
	ToolScale
)

var toolNames = [...]string{
	ToolSelect: "select",
	ToolMove:   "move",
	ToolRotate: "rotate",
	ToolScale:  "scale",
}

// Tools returns every tool in toolbar order.
func Tools() []Tool {
	return []Tool{ToolSelect, ToolMove, ToolRotate, ToolScale}
}

func (t Tool) String() string {
	if t >= ToolSelect && t <= ToolScale {
		return toolNames[t]
	}
	return "unknown"
}

// ParseTool maps a tool name back to its value.
func ParseTool(s string) (Tool, bool) {
	for i, name := range toolNames {
		if name == s {
			return Tool(i), true
		}
	}
	return ToolSelect, false
}

// Mode returns the drag mode a transform tool starts. Select has none.
func (t Tool) Mode() (Mode, bool) {
	switch t {
	case ToolMove:
		return ModeMove, true
	case ToolRotate:
		return ModeRotate, true
	case ToolScale:
		return ModeScale, true
	}
	return 0, false
}
