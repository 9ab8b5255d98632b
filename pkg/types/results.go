package types

// CommandResult is what a CLI command hands to a renderer
type CommandResult struct {
	Command string      `json:"command" yaml:"command"`
	Message string      `json:"message,omitempty" yaml:"message,omitempty"`
	Wiki    *WikiFolder `json:"wiki,omitempty" yaml:"wiki,omitempty"`
}

// SubWikiList is the link folder of one main wiki
type SubWikiList struct {
	MainWikiPath string         `json:"mainWikiPath" yaml:"mainWikiPath"`
	SubWikis     []SymlinkEntry `json:"subWikis" yaml:"subWikis"`
}

// Dangling counts entries whose target is gone
func (l SubWikiList) Dangling() int {
	n := 0
	for _, e := range l.SubWikis {
		if e.Dangling {
			n++
		}
	}
	return n
}
