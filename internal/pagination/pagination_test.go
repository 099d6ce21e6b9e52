package pagination

import "testing"

func TestPaginate_FirstPage(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	page := Paginate(items, 1, 2)

	if len(page.Items) != 2 || page.Items[0] != 1 || page.Items[1] != 2 {
		t.Fatalf("unexpected items: %v", page.Items)
	}
	if !page.HasNext {
		t.Fatalf("expected HasNext")
	}
	if page.HasPrev {
		t.Fatalf("expected no HasPrev")
	}
	if page.Total != 5 {
		t.Fatalf("expected total 5, got %d", page.Total)
	}
}

func TestPaginate_LastPartialPage(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	page := Paginate(items, 3, 2)

	if len(page.Items) != 1 || page.Items[0] != 5 {
		t.Fatalf("unexpected items: %v", page.Items)
	}
	if page.HasNext {
		t.Fatalf("expected no HasNext")
	}
	if !page.HasPrev {
		t.Fatalf("expected HasPrev")
	}
}

func TestPaginate_OutOfRange(t *testing.T) {
	items := []int{1, 2, 3}

	page := Paginate(items, 10, 2)

	if len(page.Items) != 0 {
		t.Fatalf("expected empty page, got %v", page.Items)
	}
	if page.HasNext {
		t.Fatalf("expected no HasNext")
	}
}

func TestPaginate_Defaults(t *testing.T) {
	items := make([]int, 25)

	page := Paginate(items, 0, 0)

	if page.Page != 1 {
		t.Fatalf("expected page 1, got %d", page.Page)
	}
	if page.PageSize != 20 {
		t.Fatalf("expected default page size 20, got %d", page.PageSize)
	}
	if len(page.Items) != 20 {
		t.Fatalf("expected 20 items, got %d", len(page.Items))
	}
}
