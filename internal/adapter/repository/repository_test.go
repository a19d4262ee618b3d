package repository

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/johnquangdev/transcript-archive/internal/domain/entities"
	"github.com/johnquangdev/transcript-archive/internal/testutil"
)

func mustFile(t *testing.T, path, name, ext string) *entities.File {
	t.Helper()
	f, err := entities.NewFile(path, name, ext)
	if err != nil {
		t.Fatalf("NewFile() error = %v", err)
	}
	return f
}

func mustTranscript(t *testing.T, fileID int64, path string, payload string) *entities.Transcript {
	t.Helper()
	var p entities.ConfidencePayload
	if payload != "" {
		p = entities.ConfidencePayload(payload)
	}
	tr, err := entities.NewTranscript(fileID, path, p)
	if err != nil {
		t.Fatalf("NewTranscript() error = %v", err)
	}
	return tr
}

func TestFileRepository_CreateFind(t *testing.T) {
	ctx := context.Background()
	repo := NewFileRepository(testutil.NewTestDB(t))

	f := mustFile(t, "/data/a.mp3", "a.mp3", "mp3")
	if err := repo.Create(ctx, f); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if f.ID == 0 {
		t.Fatal("Create() did not assign an ID")
	}
	if f.LoadDate.IsZero() {
		t.Error("Create() did not set load date")
	}

	got, err := repo.FindByID(ctx, f.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if got.Path != f.Path || got.Name != f.Name || got.Extension != f.Extension {
		t.Errorf("FindByID() = %+v, want %+v", got, f)
	}
	if !got.LoadDate.Equal(f.LoadDate) {
		t.Errorf("LoadDate = %v, want %v", got.LoadDate, f.LoadDate)
	}

	ok, err := repo.Exists(ctx, f.ID)
	if err != nil || !ok {
		t.Errorf("Exists() = %v, %v; want true, nil", ok, err)
	}
}

func TestFileRepository_DuplicatePathsGetDistinctIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewFileRepository(testutil.NewTestDB(t))

	a := mustFile(t, "/data/same.wav", "same.wav", "wav")
	b := mustFile(t, "/data/same.wav", "same.wav", "wav")
	if err := repo.Create(ctx, a); err != nil {
		t.Fatal(err)
	}
	if err := repo.Create(ctx, b); err != nil {
		t.Fatal(err)
	}
	if a.ID == b.ID {
		t.Errorf("duplicate path reused ID %d", a.ID)
	}
}

func TestFileRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewFileRepository(testutil.NewTestDB(t))

	_, err := repo.FindByID(ctx, 404)
	var nf *entities.NotFoundError
	if !errors.As(err, &nf) || nf.Entity != entities.EntityFile || nf.ID != 404 {
		t.Errorf("FindByID() error = %v, want file 404 NotFoundError", err)
	}

	if _, err := repo.Delete(ctx, 404); !errors.Is(err, entities.ErrNotFound) {
		t.Errorf("Delete() error = %v, want ErrNotFound", err)
	}

	ok, err := repo.Exists(ctx, 404)
	if err != nil || ok {
		t.Errorf("Exists() = %v, %v; want false, nil", ok, err)
	}
}

func TestFileRepository_SchemaRejectsBadExtension(t *testing.T) {
	ctx := context.Background()
	repo := NewFileRepository(testutil.NewTestDB(t))

	// Bypasses the constructor to check the table constraint.
	err := repo.Create(ctx, &entities.File{Path: "/x", Name: "x", Extension: "mp-3"})
	if err == nil {
		t.Error("Create() accepted a non-alphanumeric extension")
	}
}

func TestFileRepository_DeleteCascades(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	files := NewFileRepository(db)
	transcripts := NewTranscriptRepository(db)

	f := mustFile(t, "/data/a.mp3", "a.mp3", "mp3")
	if err := files.Create(ctx, f); err != nil {
		t.Fatal(err)
	}
	other := mustFile(t, "/data/b.mp3", "b.mp3", "mp3")
	if err := files.Create(ctx, other); err != nil {
		t.Fatal(err)
	}

	var ids []int64
	for _, p := range []string{"/t/1.txt", "/t/2.txt", "/t/3.txt"} {
		tr := mustTranscript(t, f.ID, p, `{"a":0.1}`)
		if err := transcripts.Create(ctx, tr); err != nil {
			t.Fatal(err)
		}
		ids = append(ids, tr.ID)
	}
	kept := mustTranscript(t, other.ID, "/t/other.txt", "")
	if err := transcripts.Create(ctx, kept); err != nil {
		t.Fatal(err)
	}

	removed, err := files.Delete(ctx, f.ID)
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if len(removed) != len(ids) {
		t.Fatalf("Delete() removed %v, want %v", removed, ids)
	}
	for i := range ids {
		if removed[i] != ids[i] {
			t.Errorf("removed[%d] = %d, want %d", i, removed[i], ids[i])
		}
	}

	for _, id := range ids {
		if _, err := transcripts.FindByID(ctx, id); !errors.Is(err, entities.ErrNotFound) {
			t.Errorf("FindByID(%d) error = %v, want ErrNotFound", id, err)
		}
	}
	list, err := transcripts.FindByFileID(ctx, f.ID)
	if err != nil || len(list) != 0 {
		t.Errorf("FindByFileID() = %v, %v; want empty", list, err)
	}
	if _, err := files.FindByID(ctx, f.ID); !errors.Is(err, entities.ErrNotFound) {
		t.Errorf("FindByID(file) error = %v, want ErrNotFound", err)
	}

	if _, err := transcripts.FindByID(ctx, kept.ID); err != nil {
		t.Errorf("transcript of another file was removed: %v", err)
	}
}

func TestTranscriptRepository_CreateMissingFile(t *testing.T) {
	ctx := context.Background()
	repo := NewTranscriptRepository(testutil.NewTestDB(t))

	err := repo.Create(ctx, mustTranscript(t, 77, "/t/x.txt", ""))
	var nf *entities.NotFoundError
	if !errors.As(err, &nf) || nf.Entity != entities.EntityFile || nf.ID != 77 {
		t.Errorf("Create() error = %v, want file 77 NotFoundError", err)
	}
}

func TestTranscriptRepository_ListOrderAndPayloadRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	files := NewFileRepository(db)
	repo := NewTranscriptRepository(db)

	f := mustFile(t, "/data/a.mp3", "a.mp3", "mp3")
	if err := files.Create(ctx, f); err != nil {
		t.Fatal(err)
	}

	payloads := []string{
		`{"zeta": 0.2, "alpha": 0.9}`,
		``,
		`[{"word":"hi","confidence":0.4,"start":0.0}]`,
	}
	var want []int64
	for i, p := range payloads {
		tr := mustTranscript(t, f.ID, "/t/"+string(rune('a'+i))+".txt", p)
		if err := repo.Create(ctx, tr); err != nil {
			t.Fatal(err)
		}
		want = append(want, tr.ID)
	}

	list, err := repo.FindByFileID(ctx, f.ID)
	if err != nil {
		t.Fatalf("FindByFileID() error = %v", err)
	}
	if len(list) != len(want) {
		t.Fatalf("FindByFileID() returned %d transcripts, want %d", len(list), len(want))
	}
	for i, tr := range list {
		if tr.ID != want[i] {
			t.Errorf("list[%d].ID = %d, want %d", i, tr.ID, want[i])
		}
		if string(tr.Confidence) != payloads[i] {
			t.Errorf("list[%d].Confidence = %q, want %q", i, tr.Confidence, payloads[i])
		}
	}
	if list[1].HasConfidence() {
		t.Error("transcript without payload reports confidence")
	}
}

func TestTranscriptRepository_UpdateConfidence(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	files := NewFileRepository(db)
	repo := NewTranscriptRepository(db)

	f := mustFile(t, "/data/a.mp3", "a.mp3", "mp3")
	if err := files.Create(ctx, f); err != nil {
		t.Fatal(err)
	}
	tr := mustTranscript(t, f.ID, "/t/a.txt", "")
	if err := repo.Create(ctx, tr); err != nil {
		t.Fatal(err)
	}

	payload := entities.ConfidencePayload(`{"hello":0.9,"world":0.3}`)
	if err := repo.UpdateConfidence(ctx, tr.ID, payload); err != nil {
		t.Fatalf("UpdateConfidence() error = %v", err)
	}
	got, err := repo.FindByID(ctx, tr.ID)
	if err != nil {
		t.Fatal(err)
	}
	if string(got.Confidence) != string(payload) {
		t.Errorf("Confidence = %q, want %q", got.Confidence, payload)
	}

	err = repo.UpdateConfidence(ctx, 999, payload)
	var nf *entities.NotFoundError
	if !errors.As(err, &nf) || nf.Entity != entities.EntityTranscript {
		t.Errorf("UpdateConfidence(999) error = %v, want transcript NotFoundError", err)
	}
}

func TestTranscriptRepository_ConcurrentCreateUniqueIDs(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	files := NewFileRepository(db)
	repo := NewTranscriptRepository(db)

	f := mustFile(t, "/data/a.mp3", "a.mp3", "mp3")
	if err := files.Create(ctx, f); err != nil {
		t.Fatal(err)
	}

	const n = 20
	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		ids = make(map[int64]bool)
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tr, err := entities.NewTranscript(f.ID, "/t/run.txt", nil)
			if err != nil {
				t.Error(err)
				return
			}
			if err := repo.Create(ctx, tr); err != nil {
				t.Errorf("Create() error = %v", err)
				return
			}
			mu.Lock()
			ids[tr.ID] = true
			mu.Unlock()
		}()
	}
	wg.Wait()

	if len(ids) != n {
		t.Errorf("got %d distinct IDs, want %d", len(ids), n)
	}
}

func TestTranslateError(t *testing.T) {
	if translateError("op", nil) != nil {
		t.Error("translateError(nil) != nil")
	}
	plain := errors.New("boom")
	var storeErr *entities.StoreError
	if got := translateError("op", plain); !errors.As(got, &storeErr) || storeErr.Op != "op" || !errors.Is(got, plain) {
		t.Errorf("translateError() = %v, want StoreError wrapping the cause", got)
	}

	notFound := &entities.NotFoundError{Entity: entities.EntityFile, ID: 1}
	if got := translateError("op", notFound); got != notFound {
		t.Errorf("translateError(NotFoundError) = %v, want passthrough", got)
	}
}

func TestFileRepository_ClosedStoreIsStoreError(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewFileRepository(db)
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatal(err)
	}
	_ = sqlDB.Close()

	if _, err := repo.FindByID(context.Background(), 1); !errors.Is(err, entities.ErrStore) {
		t.Errorf("FindByID() on closed store error = %v, want ErrStore", err)
	}
}
