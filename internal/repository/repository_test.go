package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/kucinema/internal/model"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "data.txt")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func readFile(t *testing.T, p string) string {
	t.Helper()
	b, err := os.ReadFile(p)
	require.NoError(t, err)
	return string(b)
}

func seats(t *testing.T, labels ...string) model.SeatVector {
	t.Helper()
	v, err := model.SeatsFromLabels(labels)
	require.NoError(t, err)
	return v
}

func TestReadLines(t *testing.T) {
	cases := map[string][]string{
		"":          nil,
		"a":         {"a"},
		"a\n":       {"a"},
		"a\nb":      {"a", "b"},
		"a\n\nb\n":  {"a", "", "b"},
		"a\n\n":     {"a", ""},
		"a \r\nb\n": {"a \r", "b"},
	}
	for content, want := range cases {
		got, err := readLines(writeFile(t, content))
		require.NoError(t, err)
		assert.Equal(t, want, got, "%q", content)
	}

	_, err := readLines(filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestAppendLine_TerminatesPreviousLine(t *testing.T) {
	p := writeFile(t, "07/1234")
	require.NoError(t, appendLine(p, "08/0000"))
	assert.Equal(t, "07/1234\n08/0000\n", readFile(t, p))

	p = writeFile(t, "")
	require.NoError(t, appendLine(p, "08/0000"))
	assert.Equal(t, "08/0000\n", readFile(t, p))
}

func TestAppendLine_ReportsOpenFailure(t *testing.T) {
	err := appendLine(filepath.Join(t.TempDir(), "missing", "data.txt"), "x")
	assert.Error(t, err)
}

func TestAppendLine_Repeated(t *testing.T) {
	p := writeFile(t, "")
	for _, l := range []string{"a", "b", "c"} {
		require.NoError(t, appendLine(p, l))
	}
	assert.Equal(t, "a\nb\nc\n", readFile(t, p))
}

func TestRepoPaths(t *testing.T) {
	p := writeFile(t, "")
	assert.Equal(t, p, NewStudentRepo(p).Path())
	assert.Equal(t, p, NewShowRepo(p).Path())
	assert.Equal(t, p, NewReservationRepo(p).Path())
}

func TestStudentRepo_Create(t *testing.T) {
	r := NewStudentRepo(writeFile(t, "07/1234\n"))
	require.NoError(t, r.Create(model.Student{ID: "08", Password: "0000"}))
	lines, err := r.Lines()
	require.NoError(t, err)
	assert.Equal(t, []string{"07/1234", "08/0000"}, lines)

	assert.Error(t, r.Create(model.Student{ID: "8", Password: "0000"}))
}

const scheduleFixture = "202512250900/MovieA/2025-12-25/09:00-11:00/[0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0]\n" +
	"202512251200/MovieB/2025-12-25/12:00-14:00/[1,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0]\n"

func TestShowRepo_UpdateSeats(t *testing.T) {
	r := NewShowRepo(writeFile(t, scheduleFixture))

	show, err := r.UpdateSeats("202512251200", func(cur model.SeatVector) (model.SeatVector, error) {
		return cur.Or(seats(t, "A2")), nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"A1", "A2"}, show.Seats.Labels())

	lines, err := r.Lines()
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "202512250900/MovieA/2025-12-25/09:00-11:00/[0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0]", lines[0])
	assert.Equal(t, "202512251200/MovieB/2025-12-25/12:00-14:00/[1,1,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0]", lines[1])

	got, err := r.GetByID("202512251200")
	require.NoError(t, err)
	assert.Equal(t, show, got)

	_, err = r.UpdateSeats("202601010000", func(cur model.SeatVector) (model.SeatVector, error) { return cur, nil })
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = r.GetByID("202601010000")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReservationRepo_CreateAndDelete(t *testing.T) {
	r := NewReservationRepo(writeFile(t, ""))
	a := model.Reservation{StudentID: "07", ShowID: "202512250900", Seats: seats(t, "A1")}
	b := model.Reservation{StudentID: "07", ShowID: "202512250900", Seats: seats(t, "A2")}

	require.NoError(t, r.Create(a))
	require.NoError(t, r.Create(b))
	require.NoError(t, r.Create(a))

	require.NoError(t, r.Delete(a))
	got, err := r.ListByStudent("07")
	require.NoError(t, err)
	assert.Equal(t, []model.Reservation{b, a}, got, "only the first match is removed")

	assert.ErrorIs(t, r.Delete(model.Reservation{StudentID: "08", ShowID: "202512250900", Seats: seats(t, "A1")}), ErrNotFound)
}

func TestReservationRepo_DeleteComparesParsedFields(t *testing.T) {
	r := NewReservationRepo(writeFile(t, "07/202512250900/[1, 0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0]\n"))
	require.NoError(t, r.Delete(model.Reservation{StudentID: "07", ShowID: "202512250900", Seats: seats(t, "A1")}))
	lines, err := r.Lines()
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestReservationRepo_PruneEmpty(t *testing.T) {
	content := "07/202512250900/[1,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0]\n" +
		"08/202512250900/[0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0]\n" +
		"09/202512250900/[0,1,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0]\n"
	p := writeFile(t, content)
	r := NewReservationRepo(p)

	n, err := r.PruneEmpty()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t,
		"07/202512250900/[1,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0]\n"+
			"09/202512250900/[0,1,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0]\n",
		readFile(t, p))

	n, err = r.PruneEmpty()
	require.NoError(t, err)
	assert.Zero(t, n)
}
