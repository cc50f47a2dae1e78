package cmd

import (
	"bytes"
	"testing"
	"time"

	"storage-audit/feature/history"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintRuns(t *testing.T) {
	out := new(bytes.Buffer)
	err := printRuns(out, []history.Run{
		{Command: history.CommandDiff, MissingObjects: 12, UnexpectedLocal: 3, CreatedAt: time.Now()},
		{Command: history.CommandBucketObjects, Bucket: "3", BagFilter: "42", Bags: 2, Objects: 40, CreatedAt: time.Now()},
	})
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "COMMAND")
	assert.Contains(t, text, "bucket-objects")
	assert.Contains(t, text, "12")
	assert.Contains(t, text, "-")
}
