package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/aliskhannn/assessgen/internal/domain/entities"
)

// fakeTx implements the parts of pgx.Tx the bank repository uses. Any other
// method panics through the nil embedded interface.
type fakeTx struct {
	pgx.Tx
	execs   []string
	args    [][]any
	copied  [][]any
	copyErr error
	count   int64
}

type fakeRow struct {
	n int64
}

func (r fakeRow) Scan(dest ...any) error {
	*dest[0].(*int64) = r.n
	return nil
}

func (f *fakeTx) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	f.execs = append(f.execs, strings.TrimSpace(sql))
	f.args = append(f.args, args)
	return fakeRow{n: f.count}
}

func (f *fakeTx) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.execs = append(f.execs, strings.TrimSpace(sql))
	f.args = append(f.args, args)
	return pgconn.NewCommandTag("DELETE 15"), nil
}

func (f *fakeTx) CopyFrom(_ context.Context, _ pgx.Identifier, _ []string, src pgx.CopyFromSource) (int64, error) {
	if f.copyErr != nil {
		return 0, f.copyErr
	}
	var n int64
	for src.Next() {
		vals, err := src.Values()
		if err != nil {
			return 0, err
		}
		f.copied = append(f.copied, vals)
		n++
	}
	return n, src.Err()
}

type fakeTransactor struct {
	tx        *fakeTx
	committed int
	rolled    int
}

func (f *fakeTransactor) WithinTx(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) error {
	if err := fn(ctx, f.tx); err != nil {
		f.rolled++
		return err
	}
	f.committed++
	return nil
}

func buildBank(t *testing.T) entities.Bank {
	t.Helper()
	def := definition("Adding Within 20", fixedRows(entities.QuestionsPerSubtopic))
	rows, err := def.Generate(def.Subtopic)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	return entities.Bank{Subtopic: def.Subtopic, Rows: rows}
}

func TestDatabaseSink_ReplacesSubtopicInOneTransaction(t *testing.T) {
	tr := &fakeTransactor{tx: &fakeTx{}}
	sink := NewDatabaseSink(tr)
	bank := buildBank(t)
	run := entities.NewRun()

	loc, err := sink.Save(context.Background(), run, bank)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	if loc != "postgres:test/Chapter 1/Adding Within 20" {
		t.Errorf("location = %q", loc)
	}
	if tr.committed != 1 || tr.rolled != 0 {
		t.Errorf("committed %d, rolled back %d", tr.committed, tr.rolled)
	}
	if len(tr.tx.execs) != 1 || !strings.HasPrefix(tr.tx.execs[0], "DELETE FROM assessment_items") {
		t.Fatalf("unexpected statements: %v", tr.tx.execs)
	}
	if len(tr.tx.args[0]) != 2 || tr.tx.args[0][0] != "test" || tr.tx.args[0][1] != "Chapter 1/Adding Within 20" {
		t.Errorf("delete arguments = %v", tr.tx.args[0])
	}
	if len(tr.tx.copied) != entities.QuestionsPerSubtopic {
		t.Fatalf("copied %d rows", len(tr.tx.copied))
	}
	if tr.tx.copied[0][0] != run.ID {
		t.Errorf("row run id = %v, want %v", tr.tx.copied[0][0], run.ID)
	}
}

func TestDatabaseSink_SamePathInTwoCurricula(t *testing.T) {
	tr := &fakeTransactor{tx: &fakeTx{}}
	sink := NewDatabaseSink(tr)
	run := entities.NewRun()

	kindergarten := buildBank(t)
	kindergarten.Subtopic.Curriculum = "kindergarten"
	grade1 := buildBank(t)
	grade1.Subtopic.Curriculum = "grade1"

	var locs []string
	for _, bank := range []entities.Bank{kindergarten, grade1} {
		loc, err := sink.Save(context.Background(), run, bank)
		if err != nil {
			t.Fatalf("Save: %v", err)
		}
		locs = append(locs, loc)
	}

	if locs[0] == locs[1] {
		t.Errorf("both banks reported location %q", locs[0])
	}
	if len(tr.tx.args) != 2 {
		t.Fatalf("expected 2 deletes, got %v", tr.tx.args)
	}
	for i, want := range []string{"kindergarten", "grade1"} {
		args := tr.tx.args[i]
		if args[0] != want || args[1] != "Chapter 1/Adding Within 20" {
			t.Errorf("delete %d arguments = %v", i, args)
		}
		if !strings.Contains(tr.tx.execs[i], "curriculum = $1 AND path = $2") {
			t.Errorf("delete %d is not scoped to the curriculum: %s", i, tr.tx.execs[i])
		}
	}
	if len(tr.tx.copied) != 2*entities.QuestionsPerSubtopic {
		t.Errorf("copied %d rows", len(tr.tx.copied))
	}
	if tr.tx.copied[0][1] != "kindergarten" || tr.tx.copied[entities.QuestionsPerSubtopic][1] != "grade1" {
		t.Errorf("curriculum values = %v, %v", tr.tx.copied[0][1], tr.tx.copied[entities.QuestionsPerSubtopic][1])
	}
}

func TestDatabaseSink_CountRun(t *testing.T) {
	tr := &fakeTransactor{tx: &fakeTx{count: 30}}
	run := entities.NewRun()

	n, err := NewDatabaseSink(tr).CountRun(context.Background(), run)
	if err != nil {
		t.Fatalf("CountRun: %v", err)
	}
	if n != 30 {
		t.Errorf("count = %d, want 30", n)
	}
	if len(tr.tx.args) != 1 || tr.tx.args[0][0] != run.ID {
		t.Errorf("query arguments = %v", tr.tx.args)
	}
}

func TestDatabaseSink_CopyFailureRollsBack(t *testing.T) {
	copyErr := errors.New("connection reset")
	tr := &fakeTransactor{tx: &fakeTx{copyErr: copyErr}}

	_, err := NewDatabaseSink(tr).Save(context.Background(), entities.NewRun(), buildBank(t))
	if !errors.Is(err, copyErr) {
		t.Fatalf("expected copy error, got %v", err)
	}
	if tr.rolled != 1 || tr.committed != 0 {
		t.Errorf("committed %d, rolled back %d", tr.committed, tr.rolled)
	}
}

func TestDatabaseSink_EnsureSchema(t *testing.T) {
	tr := &fakeTransactor{tx: &fakeTx{}}
	if err := NewDatabaseSink(tr).EnsureSchema(context.Background()); err != nil {
		t.Fatalf("EnsureSchema: %v", err)
	}
	if len(tr.tx.execs) != 1 || !strings.HasPrefix(tr.tx.execs[0], "CREATE TABLE IF NOT EXISTS assessment_items") {
		t.Errorf("unexpected statements: %v", tr.tx.execs)
	}
	if !strings.Contains(tr.tx.execs[0], "UNIQUE (curriculum, path, position)") {
		t.Errorf("items are not unique per curriculum: %s", tr.tx.execs[0])
	}
}
