package rss_source_gateway

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mmcdole/gofeed"

	"pai/domain"
	appErrors "pai/utils/errors"
)

const substackFeedFixture = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Example Newsletter</title>
    <link>https://example.substack.com</link>
    <item>
      <title>First Post</title>
      <link>https://example.substack.com/p/first-post</link>
      <guid isPermaLink="false">substack-guid-1</guid>
      <description>A post with a guid.</description>
      <pubDate>Wed, 01 Apr 2026 10:00:00 GMT</pubDate>
      <author>writer@example.com (A Writer)</author>
    </item>
    <item>
      <title>Second Post</title>
      <link>https://example.substack.com/p/second-post</link>
      <description>&lt;p&gt;A post without a guid.&lt;/p&gt;</description>
      <pubDate>Tue, 31 Mar 2026 08:00:00 GMT</pubDate>
    </item>
    <item>
      <title>Broken Entry</title>
      <description>No guid and no link, should be skipped.</description>
    </item>
  </channel>
</rss>`

func TestSubstackGatewayFetchItems(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/feed" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(substackFeedFixture))
	}))
	defer server.Close()

	gw := NewSubstackGateway(server.URL+"/", server.Client(), nil)

	if gw.Kind() != domain.SourceKindSubstack {
		t.Errorf("kind: got %s", gw.Kind())
	}

	items, err := gw.FetchItems(context.Background())
	if err != nil {
		t.Fatalf("fetch items: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items (entry without id skipped), got %d", len(items))
	}

	withGUID := items[0]
	if withGUID.ID != "substack-guid-1" {
		t.Errorf("guid should win over link as id, got %q", withGUID.ID)
	}
	if withGUID.URL != "https://example.substack.com/p/first-post" {
		t.Errorf("unexpected url: %s", withGUID.URL)
	}
	if withGUID.Summary != "A post with a guid." {
		t.Errorf("unexpected summary: %q", withGUID.Summary)
	}
	want := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	if !withGUID.PublishedAt.Equal(want) {
		t.Errorf("published_at: got %v, want %v", withGUID.PublishedAt, want)
	}

	withoutGUID := items[1]
	if withoutGUID.ID != "https://example.substack.com/p/second-post" {
		t.Errorf("link should serve as id when guid is absent, got %q", withoutGUID.ID)
	}
	if withoutGUID.Summary != "A post without a guid." {
		t.Errorf("html description should be flattened, got %q", withoutGUID.Summary)
	}

	for _, item := range items {
		if item.SourceID != gw.SourceID() {
			t.Errorf("item source_id %q does not match gateway %q", item.SourceID, gw.SourceID())
		}
	}
}

func TestSubstackSourceIDIsHost(t *testing.T) {
	gw := NewSubstackGateway("https://example.substack.com/", nil, nil)
	if gw.SourceID() != "example.substack.com" {
		t.Errorf("source id: got %q, want host", gw.SourceID())
	}
}

func TestLeafletAndBearBlogFeedPaths(t *testing.T) {
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(`<?xml version="1.0"?><rss version="2.0"><channel><title>t</title></channel></rss>`))
	}))
	defer server.Close()

	leaflet := NewLeafletGateway("my-leaflet", server.URL, server.Client(), nil)
	bearblog := NewBearBlogGateway("my-blog", server.URL, server.Client(), nil)

	if leaflet.Kind() != domain.SourceKindLeaflet || leaflet.SourceID() != "my-leaflet" {
		t.Errorf("leaflet identity: %s %s", leaflet.Kind(), leaflet.SourceID())
	}
	if bearblog.Kind() != domain.SourceKindBearBlog || bearblog.SourceID() != "my-blog" {
		t.Errorf("bearblog identity: %s %s", bearblog.Kind(), bearblog.SourceID())
	}

	if _, err := leaflet.FetchItems(context.Background()); err != nil {
		t.Fatalf("leaflet fetch: %v", err)
	}
	if _, err := bearblog.FetchItems(context.Background()); err != nil {
		t.Fatalf("bearblog fetch: %v", err)
	}

	if len(paths) != 2 || paths[0] != "/rss" || paths[1] != "/feed/" {
		t.Errorf("unexpected feed paths: %v", paths)
	}
}

func TestMapEntryURLFallsBackToID(t *testing.T) {
	gw := NewSubstackGateway("https://example.substack.com", nil, nil)

	item := gw.mapEntry(&gofeed.Item{
		GUID:  "https://example.substack.com/p/only-guid",
		Title: "Linkless",
	}, time.Now().UTC())
	if item == nil {
		t.Fatal("entry with guid should map")
	}
	if item.URL != "https://example.substack.com/p/only-guid" {
		t.Errorf("url should fall back to the id, got %q", item.URL)
	}
}

func TestFetchItemsErrorClassification(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		timeout time.Duration
		want    appErrors.ErrorCode
	}{
		{
			name: "malformed payload",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("this is not XML at all"))
			},
			want: appErrors.ErrCodeParse,
		},
		{
			name: "server rejection",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "gone", http.StatusNotFound)
			},
			want: appErrors.ErrCodeExternalAPI,
		},
		{
			name: "expired deadline",
			handler: func(w http.ResponseWriter, r *http.Request) {
				<-r.Context().Done()
			},
			timeout: 50 * time.Millisecond,
			want:    appErrors.ErrCodeTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			ctx := context.Background()
			if tt.timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, tt.timeout)
				defer cancel()
			}

			gw := NewSubstackGateway(server.URL, server.Client(), nil)
			_, err := gw.FetchItems(ctx)
			if err == nil {
				t.Fatal("expected fetch error")
			}

			var appErr *appErrors.AppError
			if !errors.As(err, &appErr) {
				t.Fatalf("expected AppError, got %T: %v", err, err)
			}
			if appErr.Code != tt.want {
				t.Errorf("error code: got %s, want %s", appErr.Code, tt.want)
			}
		})
	}
}

func TestFetchItemsUnreachableFeed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	feedURL := server.URL
	server.Close()

	gw := NewSubstackGateway(feedURL, nil, nil)
	_, err := gw.FetchItems(context.Background())

	var appErr *appErrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %T: %v", err, err)
	}
	if appErr.Code != appErrors.ErrCodeExternalAPI {
		t.Errorf("transport failure code: got %s, want %s", appErr.Code, appErrors.ErrCodeExternalAPI)
	}
}
