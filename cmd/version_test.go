package cmd

import (
	"bytes"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionCmd(t *testing.T) {
	var out, errOut bytes.Buffer
	versionCmd.SetOut(&out)
	versionCmd.SetErr(&errOut)
	t.Cleanup(func() {
		versionCmd.SetOut(nil)
		versionCmd.SetErr(nil)
	})

	versionCmd.Run(versionCmd, nil)

	assert.Contains(t, out.String(), "kdstats CLI")
	assert.Contains(t, out.String(), "Version: "+version)
	assert.Contains(t, out.String(), runtime.Version())
	assert.Empty(t, errOut.String())
}
