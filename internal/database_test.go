package internal

import (
	"path/filepath"
	"testing"

	"cursorchat/testutil"
)

func TestOpenDatabase(t *testing.T) {
	root := t.TempDir()
	testutil.WriteWorkspace(t, root, "ws1", [][2]string{
		{testutil.ChatDataKey, `{"messages":[]}`},
	})

	db, err := OpenDatabase(filepath.Join(root, "ws1", DBFileName))
	if err != nil {
		t.Fatalf("OpenDatabase() error = %v", err)
	}
	defer db.Close()
}

func TestOpenDatabase_MissingFile(t *testing.T) {
	db, err := OpenDatabase(filepath.Join(t.TempDir(), "nope", DBFileName))
	if err == nil {
		db.Close()
		t.Fatal("OpenDatabase() should fail for a missing file in read-only mode")
	}
}

func TestQueryChatRows(t *testing.T) {
	db := testutil.CreateInMemoryDB(t)

	testutil.InsertRow(t, db, testutil.ChatDataKey, `{"messages":[]}`)
	testutil.InsertRow(t, db, testutil.PromptsKey, `[]`)
	testutil.InsertRow(t, db, "workbench.sidebar.position", `"left"`)

	rows, err := QueryChatRows(db)
	if err != nil {
		t.Fatalf("QueryChatRows() error = %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2 (markers only)", len(rows))
	}
	for _, row := range rows {
		if row.Key != ChatDataKey && row.Key != PromptsKey {
			t.Errorf("unexpected key %q in chat rows", row.Key)
		}
		if row.RowID == 0 {
			t.Error("RowID should be populated")
		}
	}
}

func TestQueryAllRows(t *testing.T) {
	db := testutil.CreateInMemoryDB(t)

	testutil.InsertRow(t, db, testutil.ChatDataKey, `{"messages":[]}`)
	testutil.InsertRow(t, db, "workbench.sidebar.position", `"left"`)
	testutil.InsertRow(t, db, "telemetry.machineId", `"xyz"`)

	rows, err := QueryAllRows(db)
	if err != nil {
		t.Fatalf("QueryAllRows() error = %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("len(rows) = %d, want every row", len(rows))
	}
}
