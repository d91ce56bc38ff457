package commands

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/excelsia/pkg/httptask"
)

func TestDecoder(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"a":1}`)
	}))
	t.Cleanup(srv.Close)

	client := httptask.New(httptask.Config{})

	text := decoder(false)(client.Get(srv.URL))(context.Background())
	require.True(t, text.IsSuccess(), text.String())
	assert.Equal(t, `{"a":1}`, text.Value())

	pretty := decoder(true)(client.Get(srv.URL))(context.Background())
	require.True(t, pretty.IsSuccess(), pretty.String())
	assert.Equal(t, "{\n  \"a\": 1\n}", pretty.Value())
}
