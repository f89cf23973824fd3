package wizard

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

// WizardAnswers holds all user responses from the wizard.
type WizardAnswers struct {
	Inventory   string
	Separator   string
	ConfigsDir  string
	Format      string
	Output      string
	Theme       string
	Direction   string
	SkipMissing bool
	Workers     int
}

const configTemplate = `# rancid2dot configuration

format: {{ yaml .Format }}
{{- if .Output }}
output: {{ yaml .Output }}
{{- end }}
theme: {{ yaml .Theme }}
direction: {{ yaml .Direction }}

inventory:
{{- if .Inventory }}
  path: {{ yaml .Inventory }}
{{- end }}
  separator: {{ yaml .Separator }}
  configs_dir: {{ yaml .ConfigsDir }}

collect:
  on_missing: {{ if .SkipMissing }}skip{{ else }}fail{{ end }}
  workers: {{ .Workers }}
`

// yamlScalar renders s as a YAML scalar, quoting it only when needed.
func yamlScalar(s string) (string, error) {
	out, err := yaml.Marshal(s)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(string(out), "\n"), nil
}

// GenerateConfig renders the YAML config from wizard answers.
func GenerateConfig(answers WizardAnswers) (string, error) {
	if answers.Format == "" {
		answers.Format = "dot"
	}
	if answers.Theme == "" {
		answers.Theme = "classic"
	}
	if answers.Direction == "" {
		answers.Direction = "right"
	}
	if answers.Separator == "" {
		answers.Separator = ":"
	}
	if answers.ConfigsDir == "" {
		answers.ConfigsDir = "configs"
	}
	if answers.Workers < 1 {
		answers.Workers = 1
	}

	tmpl, err := template.New("config").Funcs(template.FuncMap{"yaml": yamlScalar}).Parse(configTemplate)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, answers); err != nil {
		return "", err
	}

	var check map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &check); err != nil {
		return "", fmt.Errorf("generated config is not valid YAML: %w", err)
	}

	return buf.String(), nil
}
