// Package snapshot asserts large JSON-marshalable states against golden
// files under testdata.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

// calls numbers repeat snapshots within one test function
var calls = make(map[string]int)

// ValidateSnapshot compares obj against the golden file for the calling test.
// A missing file is written out so the first run records the expectation;
// delete the file to re-generate it. depth skips extra stack frames when the
// call sits inside a test helper.
func ValidateSnapshot(t *testing.T, obj interface{}, depth int, msgAndArgs ...interface{}) {
	t.Helper()

	pc, _, _, _ := runtime.Caller(1 + depth)
	name := filepath.Base(runtime.FuncForPC(pc).Name())

	call := calls[name]
	calls[name]++

	filename := filepath.Join("testdata", fmt.Sprintf("%s-%d.json", name, call))

	got, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		t.Fatalf("could not marshal snapshot object: %v", err)
	}

	want, err := os.ReadFile(filename)
	if os.IsNotExist(err) {
		create(t, filename, got)
		return
	} else if err != nil {
		t.Fatalf("could not read snapshot %s: %v", filename, err)
	}

	if !assert.Equal(t, strings.TrimRight(string(want), "\n"), string(got), msgAndArgs...) {
		t.Logf("snapshot %s", filename)
	}
}

func create(t *testing.T, filename string, data []byte) {
	logrus.WithField("filename", filename).Info("writing snapshot file")

	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		t.Fatalf("could not create snapshot directory: %v", err)
	}

	if err := os.WriteFile(filename, append(data, '\n'), 0644); err != nil {
		t.Fatalf("could not write snapshot %s: %v", filename, err)
	}
}
