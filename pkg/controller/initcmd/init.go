package initcmd

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
)

const (
	templateConfig = `# yaml-language-server: $schema=https://raw.githubusercontent.com/suzuki-shunsuke/warnings/refs/heads/main/json-schema/warnings.json
# warnings - https://github.com/suzuki-shunsuke/warnings
version: 1
# locale: en
# min_severity: warning_normal

files:
  - pattern: "**/findbugsXml.xml"
    tool: findbugs
  - pattern: "**/checkstyle-result.xml"
    tool: checkstyle
# - pattern: "build/*.log"
#   tool: all
#   encoding: windows-1252

# path_mappings:
#   - from: /home/runner/work/
#     to: ""

# tools:
#   findbugs:
#     use_rank_as_priority: true

# parsers:
#   - id: shellcheck
#     name: ShellCheck
#     mode: line
#     console: true
#     pattern: '^(?P<file>[^:]+):(?P<line>\d+):(?P<col>\d+): (?P<level>\w+): (?P<msg>.*) \[(?P<code>SC\d+)\]$'
#     rule:
#       version: 1
#       fields:
#         file_name: '{{.Named "file"}}'
#         line_start: '{{.Named "line"}}'
#         column_start: '{{.Named "col"}}'
#         severity: '{{if eq (.Named "level") "error"}}ERROR{{else}}WARNING_NORMAL{{end}}'
#         type: '{{.Named "code"}}'
#         message: '{{.Named "msg"}}'

# suites:
#   - id: ci
#     tools: [gcc, shellcheck]
`
	filePermission os.FileMode = 0o644
)

// Init creates a configuration file if it doesn't exist.
func (c *Controller) Init(configFilePath string) error {
	f, err := afero.Exists(c.fs, configFilePath)
	if err != nil {
		return fmt.Errorf("check if a configuration file exists: %w", err)
	}
	if f {
		return nil
	}
	if err := afero.WriteFile(c.fs, configFilePath, []byte(templateConfig), filePermission); err != nil {
		return fmt.Errorf("create a configuration file: %w", err)
	}
	return nil
}
