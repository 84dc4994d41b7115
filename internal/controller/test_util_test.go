package controller

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/project/catalog/internal/controller/mocks"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)

// InitBooksTest builds a controller that reads the given lines and writes
// into the returned buffer.
func InitBooksTest(t *testing.T, lines ...string) (*mocks.MockBooksUseCase, *implementation, *bytes.Buffer) {
	t.Helper()

	ctrl := gomock.NewController(t)
	useCase := mocks.NewMockBooksUseCase(ctrl)

	out := &bytes.Buffer{}
	script := ""
	if len(lines) > 0 {
		script = strings.Join(lines, "\n") + "\n"
	}
	in := strings.NewReader(script)

	service := New(nil, useCase, in, out)
	service.now = func() time.Time { return fixedNow }

	return useCase, service, out
}
