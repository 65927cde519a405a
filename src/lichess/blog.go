package lichess

import (
	"context"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/smartchessacademy/website/src/oops"
	"github.com/smartchessacademy/website/src/utils"
)

const blogPostsPerPage = 10

const fallbackBlogImage = "https://images.unsplash.com/photo-1560174038-da43ac74f01b?w=800&h=400&fit=crop"

// featuredBlogPost is pinned ahead of the live feed on the news page.
// Curated by the coaching staff, update by hand when a bigger story
// lands.
var featuredBlogPost = BlogPost{
	ID:        "E2biEKGc",
	Title:     "FIDE World Cup Semifinals: Wei Yi & Javokhir Sindarov qualify to Candidates",
	Shortlede: "The FIDE World Cup semifinals concluded with exciting games as Wei Yi and Javokhir Sindarov secured their spots in the Candidates tournament.",
	Html:      "<p>The FIDE World Cup semifinals concluded with exciting games as Wei Yi and Javokhir Sindarov secured their spots in the Candidates tournament.</p>",
	Image:     "https://images.unsplash.com/photo-1528819622765-d6bcf132f793?w=800&h=400&fit=crop&q=80",
	Author:    "Lichess",
	Url:       "https://lichess.org/@/Lichess/blog/fide-world-cup-semifinals-wei-yi--javokhir-sindarov-qualify-to-candidates/E2biEKGc",
}

// BlogPosts fetches the lichess editorial Atom feed and returns the
// first page of posts, with the pinned featured post on top.
func (c *Client) BlogPosts(ctx context.Context, page int) (*BlogPage, error) {
	posts, err := c.blogFeed(ctx)
	if err != nil {
		return nil, err
	}

	featured := featuredBlogPost
	featured.Date = time.Now().UnixMilli()
	allPosts := append([]BlogPost{featured}, posts...)

	return &BlogPage{
		CurrentPage:        page,
		MaxPerPage:         blogPostsPerPage,
		NbPages:            utils.NumPages(len(allPosts), blogPostsPerPage),
		NbResults:          len(allPosts),
		CurrentPageResults: allPosts[:utils.Min(blogPostsPerPage, len(allPosts))],
	}, nil
}

func (c *Client) blogFeed(ctx context.Context) ([]BlogPost, error) {
	if cached, ok := c.cache.Get("blog"); ok {
		return cached.([]BlogPost), nil
	}

	body, err := c.get(ctx, c.baseUrl+"/blog.atom", "application/atom+xml")
	if err != nil {
		return nil, err
	}
	feed, err := c.feedParser.ParseString(string(body))
	if err != nil {
		return nil, oops.New(err, "failed to parse lichess blog feed")
	}

	posts := make([]BlogPost, 0, len(feed.Items))
	for _, item := range feed.Items {
		posts = append(posts, blogPostFromFeedItem(item))
	}

	c.cache.Set("blog", posts, ttlBlog)
	return posts, nil
}

func blogPostFromFeedItem(item *gofeed.Item) BlogPost {
	post := BlogPost{
		ID:        item.GUID,
		Title:     utils.OrDefault(item.Title, "Untitled"),
		Shortlede: item.Description,
		Html:      item.Content,
		Image:     fallbackBlogImage,
		Author:    "Lichess",
		Url:       item.Link,
	}

	// Post ids live in the last path segment of the permalink.
	if idx := strings.LastIndex(item.Link, "/"); idx >= 0 && idx < len(item.Link)-1 {
		post.ID = item.Link[idx+1:]
	}
	if post.Shortlede == "" && item.Content != "" {
		post.Shortlede = utils.TruncateText(stripTags(item.Content), 200)
	}
	if item.PublishedParsed != nil {
		post.Date = item.PublishedParsed.UnixMilli()
	}
	if len(item.Authors) > 0 && item.Authors[0].Name != "" {
		post.Author = item.Authors[0].Name
	}
	if item.Image != nil && item.Image.URL != "" {
		post.Image = item.Image.URL
	}
	for _, enclosure := range item.Enclosures {
		if strings.HasPrefix(enclosure.Type, "image/") && enclosure.URL != "" {
			post.Image = enclosure.URL
			break
		}
	}

	return post
}

// stripTags crudely removes markup so a snippet of the post body can
// serve as the lede. Good enough for feed excerpts, not a sanitizer.
func stripTags(html string) string {
	var b strings.Builder
	inTag := false
	for _, r := range html {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
