package scan

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/warnings/pkg/parser"
	"github.com/suzuki-shunsuke/warnings/pkg/tool"
)

const stdinName = "stdin"

// Target is an input and the tool parsing it.
type Target struct {
	Input *parser.Input
	Tool  tool.Tool
}

func (c *Controller) defaultTool() (tool.Tool, error) {
	id := c.param.Tool
	if id == "" {
		id = tool.IDAll
	}
	t, err := c.registry.Get(id)
	if err != nil {
		return nil, fmt.Errorf("get a tool: %w", err)
	}
	return t, nil
}

func (c *Controller) newInput(src parser.Source, encoding string) *parser.Input {
	if encoding == "" {
		encoding = c.param.Encoding
	}
	return &parser.Input{
		Source:    src,
		Encoding:  encoding,
		Transform: c.transform(),
	}
}

func (c *Controller) searchTargets(logE *logrus.Entry) ([]*Target, error) {
	if c.param.Stdin {
		return c.stdinTarget()
	}
	if len(c.param.Files) != 0 {
		t, err := c.defaultTool()
		if err != nil {
			return nil, err
		}
		targets := make([]*Target, len(c.param.Files))
		for i, file := range c.param.Files {
			targets[i] = &Target{
				Input: c.newInput(parser.FileSource(c.fs, file), ""),
				Tool:  t,
			}
		}
		return targets, nil
	}
	if len(c.cfg.Files) > 0 {
		return c.searchFilesByConfig(logE)
	}
	return nil, nil
}

var errConsoleLogUnsupported = errors.New("the tool can't scan console logs")

func (c *Controller) stdinTarget() ([]*Target, error) {
	t, err := c.defaultTool()
	if err != nil {
		return nil, err
	}
	if !t.CanScanConsoleLog() {
		return nil, fmt.Errorf("%w: %s", errConsoleLogUnsupported, t.ID())
	}
	b, err := io.ReadAll(c.param.Input)
	if err != nil {
		return nil, fmt.Errorf("read the standard input: %w", err)
	}
	return []*Target{
		{
			Input: c.newInput(parser.BytesSource(stdinName, b), ""),
			Tool:  t,
		},
	}, nil
}

func (c *Controller) searchFilesByConfig(logE *logrus.Entry) ([]*Target, error) {
	tools := make([]tool.Tool, len(c.cfg.Files))
	for i, file := range c.cfg.Files {
		if file.Tool == "" {
			t, err := c.defaultTool()
			if err != nil {
				return nil, err
			}
			tools[i] = t
			continue
		}
		t, err := c.registry.Get(file.Tool)
		if err != nil {
			return nil, fmt.Errorf("get a tool of files[%d]: %w", i, err)
		}
		tools[i] = t
	}

	targets := []*Target{}
	if err := afero.Walk(c.fs, c.param.PWD, func(p string, info os.FileInfo, e error) error {
		if e != nil {
			return nil //nolint:nilerr
		}
		if info.IsDir() {
			if info.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		filePath, err := filepath.Rel(c.param.PWD, p)
		if err != nil {
			logE.WithFields(logrus.Fields{
				"pwd":  c.param.PWD,
				"path": p,
			}).WithError(err).Debug("get a relative path")
			return nil
		}
		filePath = filepath.ToSlash(filePath)
		for i, file := range c.cfg.Files {
			f, err := file.Match(filePath)
			if err != nil {
				return fmt.Errorf("match a file path with a pattern: %w", err)
			}
			if !f {
				continue
			}
			targets = append(targets, &Target{
				Input: c.newInput(parser.FileSource(c.fs, filepath.Join(c.param.PWD, filePath)), file.Encoding),
				Tool:  tools[i],
			})
			break
		}
		return nil
	}); err != nil {
		return nil, fmt.Errorf("search target files: %w", err)
	}
	return targets, nil
}
