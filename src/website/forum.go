package website

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/smartchessacademy/website/src/db"
	"github.com/smartchessacademy/website/src/models"
	"github.com/smartchessacademy/website/src/oops"
	"github.com/smartchessacademy/website/src/scadata"
	"github.com/smartchessacademy/website/src/siteurl"
	"github.com/smartchessacademy/website/src/templates"
	"github.com/smartchessacademy/website/src/utils"
)

const forumPostsPerPage = 25

func Forum(c *RequestContext) ResponseData {
	page := 1
	if pageParam, ok := c.PathParams["page"]; ok && pageParam != "" {
		parsed, err := strconv.Atoi(pageParam)
		if err != nil || parsed < 1 {
			return c.Redirect(siteurl.BuildForum(1), http.StatusSeeOther)
		}
		page = parsed
	}

	posts, total, err := scadata.FetchForumPosts(c, c.Conn, page, forumPostsPerPage)
	if err != nil {
		return c.ErrorResponse(http.StatusInternalServerError, oops.New(err, "failed to fetch forum posts"))
	}

	numPages := utils.Max(1, utils.NumPages(total, forumPostsPerPage))
	if page > numPages {
		return c.Redirect(siteurl.BuildForum(numPages), http.StatusSeeOther)
	}

	var templatePosts []templates.ForumPost
	for i := range posts {
		templatePosts = append(templatePosts, templates.ForumPostListItemToTemplate(&posts[i], c.CurrentUser))
	}

	pagination := templates.Pagination{
		Current: page,
		Total:   numPages,

		FirstUrl: siteurl.BuildForum(1),
		LastUrl:  siteurl.BuildForum(numPages),
	}
	if page > 1 {
		pagination.PreviousUrl = siteurl.BuildForum(page - 1)
	}
	if page < numPages {
		pagination.NextUrl = siteurl.BuildForum(page + 1)
	}

	var res ResponseData
	res.MustWriteTemplate("forum.html", struct {
		templates.BaseData
		Posts      []templates.ForumPost
		NewPostUrl string
		Pagination templates.Pagination
	}{
		BaseData:   getBaseData(c, "Forum"),
		Posts:      templatePosts,
		NewPostUrl: siteurl.BuildForumNewPost(),
		Pagination: pagination,
	})
	return res
}

func ForumPost(c *RequestContext) ResponseData {
	post, ok, errRes := fetchForumPostForRequest(c)
	if !ok {
		return errRes
	}

	comments, err := scadata.FetchForumComments(c, c.Conn, post.ForumPost.ID)
	if err != nil {
		return c.ErrorResponse(http.StatusInternalServerError, oops.New(err, "failed to fetch forum comments"))
	}

	var templateComments []templates.ForumComment
	for _, comment := range comments {
		templateComments = append(templateComments, templates.ForumCommentToTemplate(comment, c.CurrentUser))
	}

	var res ResponseData
	res.MustWriteTemplate("forum_post.html", struct {
		templates.BaseData
		Post          templates.ForumPost
		Comments      []templates.ForumComment
		NewCommentUrl string
	}{
		BaseData:      getBaseData(c, post.ForumPost.Title),
		Post:          templates.ForumPostToTemplate(post, c.CurrentUser),
		Comments:      templateComments,
		NewCommentUrl: siteurl.BuildForumNewComment(post.ForumPost.ID),
	})
	return res
}

type forumEditorData struct {
	templates.BaseData
	EditorTitle  string
	SubmitUrl    string
	SubmitLabel  string
	TitleValue   string
	ContentValue string
	CancelUrl    string
}

func ForumNewPost(c *RequestContext) ResponseData {
	var res ResponseData
	res.MustWriteTemplate("forum_editor.html", forumEditorData{
		BaseData:    getBaseData(c, "New post"),
		EditorTitle: "New post",
		SubmitUrl:   siteurl.BuildForumNewPost(),
		SubmitLabel: "Post",
		CancelUrl:   siteurl.BuildForum(1),
	})
	return res
}

func ForumNewPostSubmit(c *RequestContext) ResponseData {
	form, err := c.GetFormValues()
	if err != nil {
		return c.ErrorResponse(http.StatusBadRequest, NewSafeError(err, "the submitted form could not be parsed"))
	}
	title := strings.TrimSpace(form.Get("title"))
	postContent := strings.TrimSpace(form.Get("content"))

	if problems := scadata.ValidateForumPost(title, postContent); len(problems) > 0 {
		data := forumEditorData{
			BaseData:     getBaseData(c, "New post"),
			EditorTitle:  "New post",
			SubmitUrl:    siteurl.BuildForumNewPost(),
			SubmitLabel:  "Post",
			TitleValue:   title,
			ContentValue: postContent,
			CancelUrl:    siteurl.BuildForum(1),
		}
		for _, problem := range problems {
			data.AddImmediateNotice("failure", problem)
		}
		var res ResponseData
		res.StatusCode = http.StatusBadRequest
		res.MustWriteTemplate("forum_editor.html", data)
		return res
	}

	post, err := scadata.CreateForumPost(c, c.Conn, c.CurrentUser.ID, title, postContent)
	if err != nil {
		return c.ErrorResponse(http.StatusInternalServerError, oops.New(err, "failed to create forum post"))
	}

	return c.Redirect(siteurl.BuildForumPost(post.ID), http.StatusSeeOther)
}

func ForumPostEdit(c *RequestContext) ResponseData {
	post, ok, errRes := fetchForumPostForRequest(c)
	if !ok {
		return errRes
	}
	if rejection, rejected := rejectNonAuthor(c, post.ForumPost.IsAuthor(c.CurrentUser), post.ForumPost.ID); rejected {
		return rejection
	}

	var res ResponseData
	res.MustWriteTemplate("forum_editor.html", forumEditorData{
		BaseData:     getBaseData(c, "Edit post"),
		EditorTitle:  "Edit post",
		SubmitUrl:    siteurl.BuildForumPostEdit(post.ForumPost.ID),
		SubmitLabel:  "Save",
		TitleValue:   post.ForumPost.Title,
		ContentValue: post.ForumPost.Content,
		CancelUrl:    siteurl.BuildForumPost(post.ForumPost.ID),
	})
	return res
}

func ForumPostEditSubmit(c *RequestContext) ResponseData {
	post, ok, errRes := fetchForumPostForRequest(c)
	if !ok {
		return errRes
	}
	if rejection, rejected := rejectNonAuthor(c, post.ForumPost.IsAuthor(c.CurrentUser), post.ForumPost.ID); rejected {
		return rejection
	}

	form, err := c.GetFormValues()
	if err != nil {
		return c.ErrorResponse(http.StatusBadRequest, NewSafeError(err, "the submitted form could not be parsed"))
	}
	title := strings.TrimSpace(form.Get("title"))
	postContent := strings.TrimSpace(form.Get("content"))

	if problems := scadata.ValidateForumPost(title, postContent); len(problems) > 0 {
		data := forumEditorData{
			BaseData:     getBaseData(c, "Edit post"),
			EditorTitle:  "Edit post",
			SubmitUrl:    siteurl.BuildForumPostEdit(post.ForumPost.ID),
			SubmitLabel:  "Save",
			TitleValue:   title,
			ContentValue: postContent,
			CancelUrl:    siteurl.BuildForumPost(post.ForumPost.ID),
		}
		for _, problem := range problems {
			data.AddImmediateNotice("failure", problem)
		}
		var res ResponseData
		res.StatusCode = http.StatusBadRequest
		res.MustWriteTemplate("forum_editor.html", data)
		return res
	}

	err = scadata.UpdateForumPost(c, c.Conn, post.ForumPost.ID, title, postContent)
	if err != nil {
		return c.ErrorResponse(http.StatusInternalServerError, oops.New(err, "failed to update forum post"))
	}

	res := c.Redirect(siteurl.BuildForumPost(post.ForumPost.ID), http.StatusSeeOther)
	res.AddFutureNotice("success", "Post updated.")
	return res
}

func ForumPostDelete(c *RequestContext) ResponseData {
	post, ok, errRes := fetchForumPostForRequest(c)
	if !ok {
		return errRes
	}
	if rejection, rejected := rejectNonAuthor(c, post.ForumPost.IsAuthor(c.CurrentUser), post.ForumPost.ID); rejected {
		return rejection
	}

	var res ResponseData
	res.MustWriteTemplate("confirm_delete.html", struct {
		templates.BaseData
		Prompt       string
		PreviewTitle string
		Preview      string
		SubmitUrl    string
		CancelUrl    string
	}{
		BaseData:     getBaseData(c, "Delete post"),
		Prompt:       "Are you sure you want to delete this post?",
		PreviewTitle: post.ForumPost.Title,
		Preview:      utils.TruncateText(post.ForumPost.Content, 300),
		SubmitUrl:    siteurl.BuildForumPostDelete(post.ForumPost.ID),
		CancelUrl:    siteurl.BuildForumPost(post.ForumPost.ID),
	})
	return res
}

func ForumPostDeleteSubmit(c *RequestContext) ResponseData {
	post, ok, errRes := fetchForumPostForRequest(c)
	if !ok {
		return errRes
	}
	if rejection, rejected := rejectNonAuthor(c, post.ForumPost.IsAuthor(c.CurrentUser), post.ForumPost.ID); rejected {
		return rejection
	}

	err := scadata.DeleteForumPost(c, c.Conn, post.ForumPost.ID)
	if err != nil {
		return c.ErrorResponse(http.StatusInternalServerError, oops.New(err, "failed to delete forum post"))
	}

	res := c.Redirect(siteurl.BuildForum(1), http.StatusSeeOther)
	res.AddFutureNotice("success", "Post deleted.")
	return res
}

func ForumNewCommentSubmit(c *RequestContext) ResponseData {
	post, ok, errRes := fetchForumPostForRequest(c)
	if !ok {
		return errRes
	}

	form, err := c.GetFormValues()
	if err != nil {
		return c.ErrorResponse(http.StatusBadRequest, NewSafeError(err, "the submitted form could not be parsed"))
	}
	commentContent := strings.TrimSpace(form.Get("content"))

	if problems := scadata.ValidateForumComment(commentContent); len(problems) > 0 {
		res := c.Redirect(siteurl.BuildForumPost(post.ForumPost.ID), http.StatusSeeOther)
		for _, problem := range problems {
			res.AddFutureNotice("failure", problem)
		}
		return res
	}

	_, err = scadata.CreateForumComment(c, c.Conn, post.ForumPost.ID, c.CurrentUser.ID, commentContent)
	if err != nil {
		return c.ErrorResponse(http.StatusInternalServerError, oops.New(err, "failed to create forum comment"))
	}

	return c.Redirect(siteurl.BuildForumPost(post.ForumPost.ID), http.StatusSeeOther)
}

func ForumCommentEdit(c *RequestContext) ResponseData {
	comment, ok, errRes := fetchForumCommentForRequest(c)
	if !ok {
		return errRes
	}
	if rejection, rejected := rejectNonAuthor(c, comment.IsAuthor(c.CurrentUser), comment.PostID); rejected {
		return rejection
	}

	var res ResponseData
	res.MustWriteTemplate("comment_editor.html", struct {
		templates.BaseData
		SubmitUrl    string
		ContentValue string
		CancelUrl    string
	}{
		BaseData:     getBaseData(c, "Edit comment"),
		SubmitUrl:    siteurl.BuildForumCommentEdit(comment.ID),
		ContentValue: comment.Content,
		CancelUrl:    siteurl.BuildForumPost(comment.PostID),
	})
	return res
}

func ForumCommentEditSubmit(c *RequestContext) ResponseData {
	comment, ok, errRes := fetchForumCommentForRequest(c)
	if !ok {
		return errRes
	}
	if rejection, rejected := rejectNonAuthor(c, comment.IsAuthor(c.CurrentUser), comment.PostID); rejected {
		return rejection
	}

	form, err := c.GetFormValues()
	if err != nil {
		return c.ErrorResponse(http.StatusBadRequest, NewSafeError(err, "the submitted form could not be parsed"))
	}
	commentContent := strings.TrimSpace(form.Get("content"))

	if problems := scadata.ValidateForumComment(commentContent); len(problems) > 0 {
		res := c.Redirect(siteurl.BuildForumCommentEdit(comment.ID), http.StatusSeeOther)
		for _, problem := range problems {
			res.AddFutureNotice("failure", problem)
		}
		return res
	}

	err = scadata.UpdateForumComment(c, c.Conn, comment.ID, commentContent)
	if err != nil {
		return c.ErrorResponse(http.StatusInternalServerError, oops.New(err, "failed to update forum comment"))
	}

	return c.Redirect(siteurl.BuildForumPost(comment.PostID), http.StatusSeeOther)
}

func ForumCommentDelete(c *RequestContext) ResponseData {
	comment, ok, errRes := fetchForumCommentForRequest(c)
	if !ok {
		return errRes
	}
	if rejection, rejected := rejectNonAuthor(c, comment.IsAuthor(c.CurrentUser), comment.PostID); rejected {
		return rejection
	}

	var res ResponseData
	res.MustWriteTemplate("confirm_delete.html", struct {
		templates.BaseData
		Prompt       string
		PreviewTitle string
		Preview      string
		SubmitUrl    string
		CancelUrl    string
	}{
		BaseData:  getBaseData(c, "Delete comment"),
		Prompt:    "Are you sure you want to delete this comment?",
		Preview:   utils.TruncateText(comment.Content, 300),
		SubmitUrl: siteurl.BuildForumCommentDelete(comment.ID),
		CancelUrl: siteurl.BuildForumPost(comment.PostID),
	})
	return res
}

func ForumCommentDeleteSubmit(c *RequestContext) ResponseData {
	comment, ok, errRes := fetchForumCommentForRequest(c)
	if !ok {
		return errRes
	}
	if rejection, rejected := rejectNonAuthor(c, comment.IsAuthor(c.CurrentUser), comment.PostID); rejected {
		return rejection
	}

	err := scadata.DeleteForumComment(c, c.Conn, comment.ID)
	if err != nil {
		return c.ErrorResponse(http.StatusInternalServerError, oops.New(err, "failed to delete forum comment"))
	}

	res := c.Redirect(siteurl.BuildForumPost(comment.PostID), http.StatusSeeOther)
	res.AddFutureNotice("success", "Comment deleted.")
	return res
}

func fetchForumPostForRequest(c *RequestContext) (*scadata.ForumPostAndAuthor, bool, ResponseData) {
	id, err := uuid.Parse(c.PathParams["id"])
	if err != nil {
		return nil, false, FourOhFour(c)
	}

	post, err := scadata.FetchForumPost(c, c.Conn, id)
	if err != nil {
		if errors.Is(err, db.NotFound) {
			return nil, false, FourOhFour(c)
		}
		return nil, false, c.ErrorResponse(http.StatusInternalServerError, oops.New(err, "failed to fetch forum post"))
	}

	return post, true, ResponseData{}
}

func fetchForumCommentForRequest(c *RequestContext) (*models.ForumComment, bool, ResponseData) {
	id, err := uuid.Parse(c.PathParams["id"])
	if err != nil {
		return nil, false, FourOhFour(c)
	}

	comment, err := scadata.FetchForumComment(c, c.Conn, id)
	if err != nil {
		if errors.Is(err, db.NotFound) {
			return nil, false, FourOhFour(c)
		}
		return nil, false, c.ErrorResponse(http.StatusInternalServerError, oops.New(err, "failed to fetch forum comment"))
	}

	return comment, true, ResponseData{}
}

// Only authors may edit or delete their own posts and comments. Anyone
// else gets bounced back to the thread with a notice rather than an
// error page.
func rejectNonAuthor(c *RequestContext, isAuthor bool, postID uuid.UUID) (ResponseData, bool) {
	if isAuthor {
		return ResponseData{}, false
	}
	res := c.Redirect(siteurl.BuildForumPost(postID), http.StatusSeeOther)
	res.AddFutureNotice("failure", "You can only change your own posts and comments.")
	return res, true
}
