package export

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/prismview/prism/internal/model"
)

// alertRuleFile mirrors the Prometheus rule-file layout so the generated
// block can be dropped into an existing alerting setup.
type alertRuleFile struct {
	Groups []alertRuleGroup `yaml:"groups"`
}

type alertRuleGroup struct {
	Name  string      `yaml:"name"`
	Rules []alertRule `yaml:"rules"`
}

type alertRule struct {
	Alert       string            `yaml:"alert"`
	Expr        string            `yaml:"expr"`
	For         string            `yaml:"for"`
	Labels      map[string]string `yaml:"labels"`
	Annotations map[string]string `yaml:"annotations"`
}

// AlertRules generates an alerting-rule block for log drift, parameterized
// by the configured warning/critical thresholds.
func AlertRules(th model.DriftThresholds) (string, error) {
	if th.Warning <= 0 {
		th.Warning = model.DefaultWarningThreshold
	}
	if th.Critical <= 0 {
		th.Critical = model.DefaultCriticalThreshold
	}

	file := alertRuleFile{
		Groups: []alertRuleGroup{{
			Name: "log-drift",
			Rules: []alertRule{
				{
					Alert: "LogDriftWarning",
					Expr:  fmt.Sprintf("abs(log_drift_percent_change) >= %g", th.Warning),
					For:   "5m",
					Labels: map[string]string{
						"severity": "warning",
					},
					Annotations: map[string]string{
						"summary":     "Log volume drift above warning threshold",
						"description": fmt.Sprintf("A (service, severity) pair changed more than %g%% against its baseline period.", th.Warning),
					},
				},
				{
					Alert: "LogDriftCritical",
					Expr:  fmt.Sprintf("abs(log_drift_percent_change) >= %g", th.Critical),
					For:   "5m",
					Labels: map[string]string{
						"severity": "critical",
					},
					Annotations: map[string]string{
						"summary":     "Log volume drift above critical threshold",
						"description": fmt.Sprintf("A (service, severity) pair changed more than %g%% against its baseline period.", th.Critical),
					},
				},
			},
		}},
	}

	out, err := yaml.Marshal(file)
	if err != nil {
		return "", fmt.Errorf("export: marshal alert rules: %w", err)
	}
	return string(out), nil
}
