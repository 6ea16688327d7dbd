package controllers

import (
	"net/http"
	"strconv"

	"shilpgroup-io/backoffice/configs"
	"shilpgroup-io/backoffice/helper"
	"shilpgroup-io/backoffice/models"
	"shilpgroup-io/backoffice/services/upstream"

	"github.com/gin-gonic/gin"
)

func ListProjectTree(client *upstream.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		filters := models.ProjectTreeFilters{
			TypeOfProject: c.Query("typeofproject"),
			Search:        c.Query("search"),
		}
		if year := c.Query("year"); year != "" {
			n, err := strconv.Atoi(year)
			if err != nil {
				helper.HandleError(c, http.StatusBadRequest, err, "year must be a number")
				return
			}
			filters.Year = n
		}

		entries, err := client.ListProjectTree(upstreamCtx(c), filters)
		if err != nil {
			helper.HandleError(c, http.StatusBadGateway, err, upstreamMessage(err, "failed to load project tree"))
			return
		}
		helper.HandleSuccess(c, http.StatusOK, "project tree", entries)
	}
}

func GetProjectTree(client *upstream.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		entry, err := client.GetProjectTree(upstreamCtx(c), c.Param("id"))
		if err != nil {
			helper.HandleError(c, http.StatusBadGateway, err, upstreamMessage(err, "failed to load project tree entry"))
			return
		}
		helper.HandleSuccess(c, http.StatusOK, "project tree entry", entry)
	}
}

func GetProjectTreeStatistics(client *upstream.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := client.ProjectTreeStatistics(upstreamCtx(c))
		if err != nil {
			helper.HandleError(c, http.StatusBadGateway, err, upstreamMessage(err, "failed to load statistics"))
			return
		}
		helper.HandleSuccess(c, http.StatusOK, "project tree statistics", stats)
	}
}

func CreateProjectTree(client *upstream.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		input, image, ok := bindProjectTreeForm(c)
		if !ok {
			return
		}

		entry, err := client.CreateProjectTree(upstreamCtx(c), input, image)
		if err != nil {
			helper.HandleError(c, http.StatusBadGateway, err, upstreamMessage(err, "failed to create project tree entry"))
			return
		}
		helper.HandleSuccess(c, http.StatusCreated, "project tree entry created", entry)
	}
}

func UpdateProjectTree(client *upstream.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		input, image, ok := bindProjectTreeForm(c)
		if !ok {
			return
		}

		entry, err := client.UpdateProjectTree(upstreamCtx(c), c.Param("id"), input, image)
		if err != nil {
			helper.HandleError(c, http.StatusBadGateway, err, upstreamMessage(err, "failed to update project tree entry"))
			return
		}
		helper.HandleSuccess(c, http.StatusOK, "project tree entry updated", entry)
	}
}

func DeleteProjectTree(client *upstream.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		msg, err := client.DeleteProjectTree(upstreamCtx(c), c.Param("id"))
		if err != nil {
			helper.HandleError(c, http.StatusBadGateway, err, upstreamMessage(err, "failed to delete project tree entry"))
			return
		}
		helper.HandleSuccess(c, http.StatusOK, msg, nil)
	}
}

func bindProjectTreeForm(c *gin.Context) (models.ProjectTreeInput, *upstream.Upload, bool) {
	var input models.ProjectTreeInput
	input.Title = c.PostForm("title")
	input.Location = c.PostForm("location")
	input.TypeOfProject = models.ProjectType(c.PostForm("typeofproject"))
	if no := c.PostForm("no"); no != "" {
		n, err := strconv.Atoi(no)
		if err != nil {
			helper.HandleError(c, http.StatusBadRequest, err, "no must be a number")
			return input, nil, false
		}
		input.No = n
	}
	if year := c.PostForm("year"); year != "" {
		n, err := strconv.Atoi(year)
		if err != nil {
			helper.HandleError(c, http.StatusBadRequest, err, "year must be a number")
			return input, nil, false
		}
		input.Year = n
	}
	if err := configs.ValidateInput(input); err != nil {
		helper.HandleError(c, http.StatusBadRequest, err, err.Error())
		return input, nil, false
	}

	var image *upstream.Upload
	if fileHeader, err := c.FormFile("image"); err == nil {
		src, err := fileHeader.Open()
		if err != nil {
			helper.HandleError(c, http.StatusBadRequest, err, "failed to read upload")
			return input, nil, false
		}
		image = &upstream.Upload{Name: fileHeader.Filename, Reader: src}
	}

	return input, image, true
}
