package rules

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrTemplateNotFound indicates no template file exists for the name.
var ErrTemplateNotFound = errors.New("rules: template not found")

// templateFile is the on-disk YAML shape of a rule template.
type templateFile struct {
	Rules      []Rule     `yaml:"rules"`
	Categories []Category `yaml:"categories"`
}

// templateDirs lists the directories searched for a named template,
// relative to the project root, in priority order.
var templateDirs = []string{
	filepath.Join(".codegrade", "templates"),
	".codegrade",
}

// LoadTemplate resolves a named rule template under the project root and
// parses it into a RuleSet. The caller still must run Validate: a
// template file is user content and gets no special trust.
func LoadTemplate(root, name string) (*RuleSet, error) {
	for _, dir := range templateDirs {
		path := filepath.Join(root, dir, name+".yaml")
		if _, err := os.Stat(path); err != nil {
			continue
		}
		return LoadTemplateFile(path)
	}
	return nil, fmt.Errorf("%w: %q under %s", ErrTemplateNotFound, name, root)
}

// LoadTemplateFile parses a rule template YAML file into a RuleSet.
func LoadTemplateFile(path string) (*RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read template: %w", err)
	}

	var tf templateFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("parse template %s: %w", path, err)
	}

	slog.Debug("loaded rule template",
		"path", path,
		"rules", len(tf.Rules),
		"categories", len(tf.Categories))

	return New(tf.Rules, tf.Categories), nil
}
