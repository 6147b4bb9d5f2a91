// Package domain holds the sweep orchestrator ports
package domain

import "context"

// TreeRunnerPort walks a dataset tree and processes every archive in it
type TreeRunnerPort interface {
	RunTree(ctx context.Context, datasetRoot, outputRoot string) error
}
