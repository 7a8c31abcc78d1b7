package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestComponentFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, logrus.DebugLevel)
	Component(log, "assembler").WithField("room", "[1,2]").Debug("Populating room")

	out := buf.String()
	for _, want := range []string{"component=assembler", "room=\"[1,2]\"", "Populating room"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q missing %q", out, want)
		}
	}
}

func TestLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, logrus.WarnLevel)
	log.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("info logged at warn level: %q", buf.String())
	}
}
