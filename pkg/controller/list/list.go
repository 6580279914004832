package list

import (
	"fmt"
	"text/template"

	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/warnings/pkg/tool"
)

// List outputs the tools in registration order.
func (c *Controller) List(logE *logrus.Entry) error {
	tmpl, err := c.parseTemplate()
	if err != nil {
		return err
	}
	for _, t := range c.registry.List() {
		if c.param.Console && !t.CanScanConsoleLog() {
			logE.WithField("tool", t.ID()).Debug("exclude the tool as it can't scan console logs")
			continue
		}
		if err := c.output(newToolInfo(t), tmpl); err != nil {
			return err
		}
	}
	return nil
}

func newToolInfo(t tool.Tool) *ToolInfo {
	info := &ToolInfo{
		ID:      t.ID(),
		Name:    t.Name(),
		Pattern: t.Pattern(),
		Console: t.CanScanConsoleLog(),
		Help:    t.Help(),
	}
	if s, ok := t.(*tool.Suite); ok {
		for _, m := range s.Tools() {
			info.Members = append(info.Members, m.ID())
		}
	}
	return info
}

func (c *Controller) parseTemplate() (*template.Template, error) {
	if c.param.LineTemplate == "" {
		return nil, nil //nolint:nilnil
	}
	tmpl, err := template.New("line").Parse(c.param.LineTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse line template: %w", err)
	}
	return tmpl, nil
}

func (c *Controller) output(info *ToolInfo, tmpl *template.Template) error {
	if tmpl != nil {
		if err := tmpl.Execute(c.stdout, info); err != nil {
			return fmt.Errorf("execute template: %w", err)
		}
		fmt.Fprintln(c.stdout)
		return nil
	}
	// <ID>\t<Name>\t<Pattern>\t<Console>\t<Help>
	fmt.Fprintf(c.stdout, "%s\t%s\t%s\t%t\t%s\n", info.ID, info.Name, info.Pattern, info.Console, info.Help)
	return nil
}
