package mocks

import (
	"testing"

	"go.uber.org/mock/gomock"
)

// NewMockChainServiceForTest creates a new mock ChainService for testing
func NewMockChainServiceForTest(t *testing.T) *MockChainService {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockChainService(ctrl)
}

// NewMockWeddingServiceForTest creates a new mock WeddingService for testing
func NewMockWeddingServiceForTest(t *testing.T) *MockWeddingService {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockWeddingService(ctrl)
}

// NewMockMetadataFetcherForTest creates a new mock MetadataFetcher for testing
func NewMockMetadataFetcherForTest(t *testing.T) *MockMetadataFetcher {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockMetadataFetcher(ctrl)
}
