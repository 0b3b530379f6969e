package logger

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/broadcastr/broadcastr-backend/internal/types/environments"
)

func TestNew_AllEnvironments(t *testing.T) {
	for _, env := range []environments.Environment{
		environments.Production,
		environments.Staging,
		environments.Development,
		environments.Test,
		environments.Environment("unknown"),
	} {
		l := New(env)
		assert.NotNil(t, l)
		assert.NotNil(t, l.wrappedLogger)
	}
}

func TestLogger_DoesNotPanic(t *testing.T) {
	l := New(environments.Test)

	assert.NotPanics(t, func() {
		l.Debug("debug message", map[string]string{"key": "value"})
		l.Info("info message", map[string]string{"key": "value"})
		l.Error("error message", map[string]string{"key": "value"})
		l.Info("no fields")
	})
}

func TestTransformStrMapToFields(t *testing.T) {
	fields := transformStrMapToFields(map[string]string{
		"key1": "value1",
		"key2": "value2",
	})
	sort.Slice(fields, func(i, j int) bool { return fields[i].Key < fields[j].Key })

	assert.Len(t, fields, 2)
	assert.Equal(t, zap.String("key1", "value1"), fields[0])
	assert.Equal(t, zap.String("key2", "value2"), fields[1])

	assert.Empty(t, transformStrMapToFields(map[string]string{}))
}
