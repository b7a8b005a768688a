// Package config loads the cronrule binary's settings and crontab file.
package config

import (
	"bytes"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	cron "github.com/kaiserkarel/cronrule"
)

// Crontab is the YAML document listing the tasks to run.
//
//	location: Europe/Amsterdam
//	tasks:
//	  - name: backup
//	    schedule: "0 0 3 * *"
//	    command: /usr/local/bin/backup --full
type Crontab struct {
	// Location overrides the settings' location when set.
	Location string  `yaml:"location"`
	Shell    string  `yaml:"shell"`
	Tasks    []Entry `yaml:"tasks"`
}

// Entry is one scheduled command.
type Entry struct {
	Name     string            `yaml:"name"`
	Schedule string            `yaml:"schedule"`
	Command  string            `yaml:"command"`
	Dir      string            `yaml:"dir"`
	Env      map[string]string `yaml:"env"`
}

// LoadCrontab reads and validates the crontab at path.
func LoadCrontab(path string) (*Crontab, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading crontab")
	}
	tab, err := DecodeCrontab(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, "crontab %s", path)
	}
	return tab, nil
}

// DecodeCrontab decodes a crontab, rejecting unknown keys, and validates it.
func DecodeCrontab(r io.Reader) (*Crontab, error) {
	var tab Crontab
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&tab); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "decoding yaml")
	}
	if err := tab.Validate(); err != nil {
		return nil, err
	}
	return &tab, nil
}

// Validate checks every entry, parsing its schedule so malformed expressions
// are reported before anything is scheduled.
func (c *Crontab) Validate() error {
	names := make(map[string]bool, len(c.Tasks))
	for i := range c.Tasks {
		e := &c.Tasks[i]
		if strings.TrimSpace(e.Name) == "" {
			e.Name = "task-" + strconv.Itoa(i+1)
		}
		if names[e.Name] {
			return errors.Errorf("task %s: duplicate name", e.Name)
		}
		names[e.Name] = true

		if strings.TrimSpace(e.Command) == "" {
			return errors.Errorf("task %s: empty command", e.Name)
		}
		if _, err := cron.Parse(e.Schedule); err != nil {
			return errors.Wrapf(err, "task %s", e.Name)
		}
	}
	return nil
}
