package board

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/pkg/taskapi"
)

func TestRender(t *testing.T) {
	tcs := map[string]struct {
		view     View
		contains []string
		absent   []string
	}{
		"loading": {
			view:     View{Status: StatusLoading},
			contains: []string{"Loading tasks..."},
			absent:   []string{"No tasks yet"},
		},
		"empty": {
			view:     View{Status: StatusLoaded},
			contains: []string{"No tasks yet. Add the first one."},
		},
		"rows with badges": {
			view: View{Status: StatusLoaded, Rows: []Row{
				{Task: taskapi.Task{ID: 1, Title: "Write docs"}},
				{Task: taskapi.Task{ID: 2, Title: "Ship", IsComplete: true}},
			}},
			contains: []string{"#1", "Write docs", "[Open]", "#2", "Ship", "[Complete]"},
			absent:   []string{"No tasks yet"},
		},
		"banner above rows": {
			view: View{Status: StatusLoaded, Error: "Title cannot be empty.", Rows: []Row{
				{Task: taskapi.Task{ID: 1, Title: "Write docs"}},
			}},
			contains: []string{"! Title cannot be empty.", "Write docs"},
		},
		"edit line": {
			view: View{Status: StatusLoaded, EditingID: 1, EditingTitle: "Draft", Rows: []Row{
				{Task: taskapi.Task{ID: 1, Title: "Write docs"}, Editing: true},
			}},
			contains: []string{"> Draft"},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Render(&buf, tc.view))
			for _, s := range tc.contains {
				assert.Contains(t, buf.String(), s)
			}
			for _, s := range tc.absent {
				assert.NotContains(t, buf.String(), s)
			}
		})
	}
}
