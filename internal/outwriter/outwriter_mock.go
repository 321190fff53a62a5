package outwriter

import (
	"github.com/huangsam/kdstats/internal/contract"
	"github.com/huangsam/kdstats/schema"
	"github.com/stretchr/testify/mock"
)

// MockReportWriter is a mock implementation of ReportWriter for testing.
type MockReportWriter struct {
	mock.Mock
}

var _ contract.ReportWriter = &MockReportWriter{} // Compile-time check

// WriteChart implements the ReportWriter interface.
func (m *MockReportWriter) WriteChart(model schema.ChartModel, path string) error {
	args := m.Called(model, path)
	return args.Error(0)
}

// WriteTable implements the ReportWriter interface.
func (m *MockReportWriter) WriteTable(ds schema.Dataset, path string) error {
	args := m.Called(ds, path)
	return args.Error(0)
}

// WriteSummary implements the ReportWriter interface.
func (m *MockReportWriter) WriteSummary(summary schema.RunSummary) error {
	args := m.Called(summary)
	return args.Error(0)
}
