package toolchain

import (
	"fmt"
)

// ToolStatus reports whether one external tool resolves to an executable
type ToolStatus struct {
	Tool    string
	Path    string
	Found   bool
	Message string
}

// Check verifies that ffprobe, ffplay and ffmpeg can be found
func (s *Service) Check() []ToolStatus {
	return []ToolStatus{
		s.checkTool(FFprobeCommand, s.cfg.FFprobePath),
		s.checkTool(FFplayCommand, s.cfg.FFplayPath),
		s.checkTool(FFmpegCommand, s.cfg.FFmpegPath),
	}
}

// MissingTools returns the names of tools that could not be found
func MissingTools(statuses []ToolStatus) []string {
	var missing []string
	for _, st := range statuses {
		if !st.Found {
			missing = append(missing, st.Tool)
		}
	}
	return missing
}

// checkTool verifies a configured binary is executable or on PATH
func (s *Service) checkTool(tool, configured string) ToolStatus {
	path, err := s.lookPath(configured)
	if err != nil {
		return ToolStatus{
			Tool:    tool,
			Path:    configured,
			Message: fmt.Sprintf("Tool not found: %s", configured),
		}
	}
	return ToolStatus{
		Tool:    tool,
		Path:    path,
		Found:   true,
		Message: fmt.Sprintf("Found at %s", path),
	}
}

// ensure the service implements the gateway
var _ Gateway = (*Service)(nil)
