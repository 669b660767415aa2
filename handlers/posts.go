package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"blog/auth"
	"blog/cache"
	"blog/config"
	"blog/models"
	"blog/storage"
	"blog/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Index serves the home feed. The rendered page is memoized per page
// number for INDEX_CACHE_TTL seconds - a new post does not show up
// here until the entry ages out (or cache.InvalidateIndex is called).
func Index(c *gin.Context) {
	page, ok := pageParam(c)
	if !ok {
		notFound(c)
		return
	}
	if c.Query("format") == "json" {
		posts, err := models.LatestPosts()
		if err != nil {
			serverError(c, err)
			return
		}
		pg, err := utils.Paginate(posts, page, config.PAGE_SIZE)
		if err != nil {
			notFound(c)
			return
		}
		c.JSON(http.StatusOK, postInfoList(pg.Items))
		return
	}
	ttl := time.Duration(config.INDEX_CACHE_TTL) * time.Second
	body, err := cache.Pages.GetOrRender(cache.IndexKey(page), ttl, func() ([]byte, error) {
		posts, err := models.LatestPosts()
		if err != nil {
			return nil, err
		}
		pg, err := utils.Paginate(posts, page, config.PAGE_SIZE)
		if err != nil {
			return nil, err
		}
		return Render("index.tmpl", gin.H{"Page": pg})
	})
	if errors.Is(err, utils.ErrPageNotFound) {
		notFound(c)
		return
	}
	if err != nil {
		serverError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", body)
}

func PostDetail(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		notFound(c)
		return
	}
	detail, err := models.GetPost(id)
	if err != nil {
		notFound(c)
		return
	}
	if c.Query("format") == "json" {
		comments := make([]CommentInfo, 0, len(detail.Comments))
		for i := range detail.Comments {
			comments = append(comments, NewCommentInfo(&detail.Comments[i]))
		}
		c.JSON(http.StatusOK, gin.H{
			"post":              NewPostInfo(&detail.Post),
			"comments":          comments,
			"author_post_count": detail.AuthorPostCount,
		})
		return
	}
	user := auth.LoadSession(c).User()
	renderPostDetail(c, &detail, &user, "")
}

func renderPostDetail(c *gin.Context, detail *models.PostDetail, user *models.User, commentError string) {
	c.HTML(http.StatusOK, "post_detail.tmpl", gin.H{
		"Post":            detail.Post,
		"Comments":        detail.Comments,
		"AuthorPostCount": detail.AuthorPostCount,
		"CanEdit":         models.CanEdit(user, &detail.Post),
		"LoggedIn":        user.ID != 0,
		"CommentError":    commentError,
	})
}

type postForm struct {
	Text    string
	GroupID *uint64
	Errors  map[string]string
}

func (f *postForm) GroupSelected(id uint64) bool {
	return f.GroupID != nil && *f.GroupID == id
}

func (f *postForm) bind(c *gin.Context) {
	f.Errors = map[string]string{}
	f.Text = strings.TrimSpace(c.PostForm("text"))
	if f.Text == "" {
		f.Errors["Text"] = "Post text is required"
	}
	if raw := c.PostForm("group"); raw != "" {
		groupID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			f.Errors["Group"] = "Unknown group"
			return
		}
		if _, err = models.GroupByID(groupID); err != nil {
			f.Errors["Group"] = "Unknown group"
			return
		}
		f.GroupID = &groupID
	}
}

func renderPostForm(c *gin.Context, form *postForm, editing *models.Post) {
	groups, err := models.GroupList()
	if err != nil {
		serverError(c, err)
		return
	}
	data := gin.H{
		"Form":   form,
		"Groups": groups,
	}
	if editing != nil {
		data["Post"] = editing
	}
	c.HTML(http.StatusOK, "post_form.tmpl", data)
}

func PostCreateForm(c *gin.Context, user *models.User) {
	renderPostForm(c, &postForm{Errors: map[string]string{}}, nil)
}

func PostCreate(c *gin.Context, user *models.User) {
	form := postForm{}
	form.bind(c)
	image, imageErr := c.FormFile("image")
	if imageErr != nil {
		image = nil
	}
	if len(form.Errors) > 0 {
		renderPostForm(c, &form, nil)
		return
	}
	post := models.Post{
		Text:    form.Text,
		UserID:  user.ID,
		GroupID: form.GroupID,
	}
	if image != nil {
		bucketID, imagePath, thumbPath, err := saveImage(image)
		if err != nil {
			form.Errors["Image"] = err.Error()
			renderPostForm(c, &form, nil)
			return
		}
		post.BucketID = &bucketID
		post.ImagePath = imagePath
		post.ThumbPath = thumbPath
	}
	if err := models.PostCreate(&post); err != nil {
		deletePostMedia(&post)
		serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/profile/"+user.Username+"/")
}

func PostEditForm(c *gin.Context, user *models.User) {
	id, ok := idParam(c)
	if !ok {
		notFound(c)
		return
	}
	post, err := models.PostByID(id)
	if err != nil {
		notFound(c)
		return
	}
	// Non-authors get the read-only detail view instead of an error page
	if !models.CanEdit(user, &post) {
		c.Redirect(http.StatusFound, postPath(post.ID))
		return
	}
	form := postForm{Text: post.Text, GroupID: post.GroupID, Errors: map[string]string{}}
	renderPostForm(c, &form, &post)
}

func PostEdit(c *gin.Context, user *models.User) {
	id, ok := idParam(c)
	if !ok {
		notFound(c)
		return
	}
	post, err := models.PostByID(id)
	if err != nil {
		notFound(c)
		return
	}
	if !models.CanEdit(user, &post) {
		c.Redirect(http.StatusFound, postPath(post.ID))
		return
	}
	form := postForm{}
	form.bind(c)
	if len(form.Errors) > 0 {
		renderPostForm(c, &form, &post)
		return
	}
	if image, imageErr := c.FormFile("image"); imageErr == nil {
		bucketID, imagePath, thumbPath, err := saveImage(image)
		if err != nil {
			form.Errors["Image"] = err.Error()
			renderPostForm(c, &form, &post)
			return
		}
		if err = post.SetImage(bucketID, imagePath, thumbPath); err != nil {
			serverError(c, err)
			return
		}
	}
	if err := models.PostUpdate(&post, form.Text, form.GroupID); err != nil {
		serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, postPath(post.ID))
}

func postPath(id uint64) string {
	return fmt.Sprintf("/posts/%d/", id)
}

var errNoImageStorage = errors.New("image uploads are not configured")
var errInvalidImage = errors.New("the uploaded file is not a valid image")

// saveImage stores the original and a JPEG thumbnail, returning the
// bucket and paths to record on the post
func saveImage(file *multipart.FileHeader) (bucketID uint64, imagePath, thumbPath string, err error) {
	stor := storage.GetDefaultStorage()
	if stor == nil {
		return 0, "", "", errNoImageStorage
	}
	src, err := file.Open()
	if err != nil {
		return 0, "", "", errInvalidImage
	}
	defer src.Close()
	data, err := io.ReadAll(src)
	if err != nil {
		return 0, "", "", errInvalidImage
	}
	var thumb bytes.Buffer
	if _, err = utils.CreateThumb(uint(config.THUMB_SIZE), bytes.NewReader(data), &thumb); err != nil {
		return 0, "", "", errInvalidImage
	}
	name := uuid.NewString()
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext == "" {
		ext = ".jpg"
	}
	imagePath = "posts/" + name + ext
	thumbPath = "thumbs/" + name + ".jpg"
	if _, err = stor.Save(imagePath, bytes.NewReader(data)); err != nil {
		return 0, "", "", err
	}
	if _, err = stor.Save(thumbPath, &thumb); err != nil {
		_ = stor.Delete(imagePath)
		return 0, "", "", err
	}
	return stor.GetBucket().ID, imagePath, thumbPath, nil
}

// deletePostMedia removes stored files for a post whose row was never
// written - no orphaned half-written post
func deletePostMedia(post *models.Post) {
	if post.BucketID == nil || !post.HasImage() {
		return
	}
	stor := storage.StorageFromBucketID(*post.BucketID)
	if stor == nil {
		return
	}
	_ = stor.Delete(post.ImagePath)
	_ = stor.Delete(post.ThumbPath)
}
