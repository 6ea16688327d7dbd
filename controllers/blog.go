package controllers

import (
	"encoding/json"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"shilpgroup-io/backoffice/configs"
	"shilpgroup-io/backoffice/helper"
	"shilpgroup-io/backoffice/models"
	"shilpgroup-io/backoffice/services/upstream"

	"github.com/gin-gonic/gin"
)

func ListBlogs(client *upstream.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		blogs, err := client.ListBlogs(upstreamCtx(c))
		if err != nil {
			helper.HandleError(c, http.StatusBadGateway, err, upstreamMessage(err, "failed to load blogs"))
			return
		}
		helper.HandleSuccess(c, http.StatusOK, "blogs", blogs)
	}
}

func GetBlog(client *upstream.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		blog, err := client.GetBlog(upstreamCtx(c), c.Param("id"))
		if err != nil {
			helper.HandleError(c, http.StatusBadGateway, err, upstreamMessage(err, "failed to load blog"))
			return
		}
		helper.HandleSuccess(c, http.StatusOK, "blog", blog)
	}
}

func CreateBlog(client *upstream.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		input, image, pointImages, ok := bindBlogForm(c)
		if !ok {
			return
		}

		blog, err := client.CreateBlog(upstreamCtx(c), input, image, pointImages)
		closeBlogUploads(image, pointImages)
		if err != nil {
			helper.HandleError(c, http.StatusBadGateway, err, upstreamMessage(err, "failed to create blog"))
			return
		}
		helper.HandleSuccess(c, http.StatusCreated, "blog created", blog)
	}
}

func UpdateBlog(client *upstream.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		input, image, pointImages, ok := bindBlogForm(c)
		if !ok {
			return
		}

		blog, err := client.UpdateBlog(upstreamCtx(c), c.Param("id"), input, image, pointImages)
		closeBlogUploads(image, pointImages)
		if err != nil {
			helper.HandleError(c, http.StatusBadGateway, err, upstreamMessage(err, "failed to update blog"))
			return
		}
		helper.HandleSuccess(c, http.StatusOK, "blog updated", blog)
	}
}

func DeleteBlog(client *upstream.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		msg, err := client.DeleteBlog(upstreamCtx(c), c.Param("id"))
		if err != nil {
			helper.HandleError(c, http.StatusBadGateway, err, upstreamMessage(err, "failed to delete blog"))
			return
		}
		helper.HandleSuccess(c, http.StatusOK, msg, nil)
	}
}

// bindBlogForm reads the blog multipart form: scalar fields, the points
// array as a JSON string, the cover image and per-point images under
// point_N_image.
func bindBlogForm(c *gin.Context) (models.BlogInput, *upstream.Upload, map[int]*upstream.Upload, bool) {
	input := models.BlogInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Publish:     c.PostForm("publish"),
		Date:        c.PostForm("date"),
		URL:         c.PostForm("url"),
		Alt:         c.PostForm("alt"),
		Status:      models.BlogStatus(c.PostForm("status")),
	}
	if raw := c.PostForm("points"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &input.Points); err != nil {
			helper.HandleError(c, http.StatusBadRequest, err, "points must be a JSON array")
			return input, nil, nil, false
		}
	}
	if err := configs.ValidateInput(input); err != nil {
		helper.HandleError(c, http.StatusBadRequest, err, err.Error())
		return input, nil, nil, false
	}

	var image *upstream.Upload
	if fileHeader, err := c.FormFile("image"); err == nil {
		src, err := fileHeader.Open()
		if err != nil {
			helper.HandleError(c, http.StatusBadRequest, err, "failed to read upload")
			return input, nil, nil, false
		}
		image = &upstream.Upload{Name: fileHeader.Filename, Reader: src}
	}

	pointImages := make(map[int]*upstream.Upload)
	if form, err := c.MultipartForm(); err == nil {
		for name, headers := range form.File {
			if !strings.HasPrefix(name, "point_") || !strings.HasSuffix(name, "_image") || len(headers) == 0 {
				continue
			}
			idx, err := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(name, "point_"), "_image"))
			if err != nil {
				continue
			}
			src, err := headers[0].Open()
			if err != nil {
				continue
			}
			pointImages[idx] = &upstream.Upload{Name: headers[0].Filename, Reader: src}
		}
	}

	return input, image, pointImages, true
}

func closeBlogUploads(image *upstream.Upload, pointImages map[int]*upstream.Upload) {
	if image != nil {
		if f, ok := image.Reader.(multipart.File); ok {
			_ = f.Close()
		}
	}
	for _, u := range pointImages {
		if f, ok := u.Reader.(multipart.File); ok {
			_ = f.Close()
		}
	}
}
