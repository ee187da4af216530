/*
Copyright 2019 Cortex Labs, Inc.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package logging

import (
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.SugaredLogger
var loggerLock sync.Mutex

type LogLevel int

const (
	UnknownLogLevel LogLevel = iota
	DebugLogLevel
	InfoLogLevel
	WarningLogLevel
	ErrorLogLevel
)

var _logLevels = []string{
	"unknown",
	"debug",
	"info",
	"warning",
	"error",
}

func LogLevelFromString(s string) LogLevel {
	for i := 0; i < len(_logLevels); i++ {
		if s == _logLevels[i] {
			return LogLevel(i)
		}
	}
	return UnknownLogLevel
}

func LogLevelTypes() []string {
	return _logLevels[1:]
}

func (t LogLevel) String() string {
	return _logLevels[t]
}

func ToZapLogLevel(logLevel LogLevel) zapcore.Level {
	switch logLevel {
	case InfoLogLevel:
		return zapcore.InfoLevel
	case WarningLogLevel:
		return zapcore.WarnLevel
	case ErrorLogLevel:
		return zapcore.ErrorLevel
	default:
		return zapcore.DebugLevel
	}
}

func initializeLogger() {
	logLevelStr := os.Getenv("SEMPARSE_LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info"
	}

	logLevel := LogLevelFromString(logLevelStr)
	if logLevel == UnknownLogLevel {
		panic(ErrorInvalidLogLevel(logLevelStr, LogLevelTypes()))
	}

	zapConfig := DefaultZapConfig(logLevel)

	disableJSONLogging := strings.ToLower(os.Getenv("SEMPARSE_DISABLE_JSON_LOGGING"))
	if disableJSONLogging == "true" {
		zapConfig.Encoding = "console"
	}

	builtLogger, err := zapConfig.Build()
	if err != nil {
		panic(err)
	}

	logger = builtLogger.Sugar()
}

func GetLogger() *zap.SugaredLogger {
	loggerLock.Lock()
	defer loggerLock.Unlock()

	if logger == nil {
		initializeLogger()
	}
	return logger
}

func DefaultZapConfig(level LogLevel, fields ...map[string]interface{}) zap.Config {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.MessageKey = "message"

	labels := map[string]interface{}{}
	for _, m := range fields {
		for k, v := range m {
			labels[k] = v
		}
	}

	initialFields := map[string]interface{}{}
	if len(labels) > 0 {
		initialFields["labels"] = labels
	}

	return zap.Config{
		Level:            zap.NewAtomicLevelAt(ToZapLogLevel(level)),
		Encoding:         "json",
		EncoderConfig:    encoderConfig,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
		InitialFields:    initialFields,
	}
}
