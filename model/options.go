// SPDX-License-Identifier: MIT

package model

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/qbasis/matrix"
)

const (
	panicLogger = "model: WithLogger: nil logger"
	panicID     = "model: WithID: nil uuid"
)

// Option configures a Model.
type Option func(*Options)

// Options is the resolved Model configuration.
type Options struct {
	logger     *zap.Logger
	id         uuid.UUID
	matrixOpts []matrix.Option
}

// WithLogger attaches a logger; every record carries the model id.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicLogger)
	}

	return func(o *Options) { o.logger = l }
}

// WithID fixes the model identity (random by default).
func WithID(id uuid.UUID) Option {
	if id == uuid.Nil {
		panic(panicID)
	}

	return func(o *Options) { o.id = id }
}

// WithMatrixOptions forwards options (e.g. matrix.WithEpsilon as the drop
// tolerance) to the sparse builder.
func WithMatrixOptions(opts ...matrix.Option) Option {
	return func(o *Options) { o.matrixOpts = append(o.matrixOpts, opts...) }
}

func gatherOptions(user ...Option) Options {
	o := Options{logger: zap.NewNop()}
	for _, set := range user {
		set(&o)
	}
	if o.id == uuid.Nil {
		o.id = uuid.New()
	}

	return o
}
