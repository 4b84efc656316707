package internallogger

import (
	"os"
	"sync"

	"github.com/joeydtaylor/meander/pkg/logschema"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type LoggerOption func(*zap.Config, *zapcore.Level, *int) // Updated to include caller skip management

type ZapLoggerAdapter struct {
	logger      *zap.Logger
	atomicLevel zap.AtomicLevel
	callerDepth int
	callerOn    bool
	mu          sync.Mutex
	sinks       map[string]sinkEntry
	baseCore    zapcore.Core
	baseFields  []zap.Field
	encConfig   zapcore.EncoderConfig
}

// NewLogger initializes a new ZapLoggerAdapter with configurable options.
func NewLogger(options ...LoggerOption) *ZapLoggerAdapter {
	config := zap.NewProductionConfig()
	level := zapcore.InfoLevel
	callerDepth := 3 // Default caller depth

	// Apply each provided option to the configuration
	for _, option := range options {
		option(&config, &level, &callerDepth)
	}

	encConfig := standardEncoderConfig()
	atomicLevel := zap.NewAtomicLevelAt(level)
	baseCore := zapcore.NewCore(zapcore.NewJSONEncoder(encConfig), zapcore.Lock(os.Stdout), atomicLevel)

	fields := make([]zap.Field, 0, len(config.InitialFields)+1)
	if _, ok := config.InitialFields[logschema.FieldSchema]; !ok {
		fields = append(fields, zap.String(logschema.FieldSchema, logschema.SchemaID))
	}
	fields = append(fields, fieldsFromMap(config.InitialFields)...)

	adapter := &ZapLoggerAdapter{
		atomicLevel: atomicLevel,
		callerDepth: callerDepth,
		callerOn:    true,
		sinks:       make(map[string]sinkEntry),
		baseCore:    baseCore,
		baseFields:  fields,
		encConfig:   encConfig,
	}
	adapter.rebuildLoggerLocked()
	return adapter
}
