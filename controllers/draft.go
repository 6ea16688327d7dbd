package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"shilpgroup-io/backoffice/helper"
	"shilpgroup-io/backoffice/internal/assembler"
	"shilpgroup-io/backoffice/internal/draft"
	"shilpgroup-io/backoffice/internal/middleware"
	"shilpgroup-io/backoffice/internal/staging"
	"shilpgroup-io/backoffice/models"
	"shilpgroup-io/backoffice/services/upstream"

	"github.com/gin-gonic/gin"
)

// The brochure slot only accepts PDFs up to this size; every other slot
// takes images and goes through upstream validation instead.
const maxBrochureSize = 100 << 20

func storeFor(c *gin.Context, manager *draft.Manager) (*draft.Store, bool) {
	store, err := manager.ForAdmin(c.Request.Context(), c.GetString(middleware.ContextAdminId))
	if err != nil {
		helper.HandleError(c, http.StatusInternalServerError, err, "failed to load draft")
		return nil, false
	}
	return store, true
}

func draftErrStatus(err error) int {
	switch {
	case errors.Is(err, draft.ErrItemNotFound):
		return http.StatusNotFound
	case errors.Is(err, draft.ErrSubmitInFlight), errors.Is(err, draft.ErrIncomplete):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

// GetWizard returns the draft plus the derived completion model.
func GetWizard(manager *draft.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := storeFor(c, manager)
		if !ok {
			return
		}
		helper.HandleSuccess(c, http.StatusOK, "wizard state", store.State())
	}
}

// SetWizardField updates one scalar field and echoes the new state, so
// the dashboard sees derived edits like the regenerated slug.
func SetWizardField(manager *draft.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := storeFor(c, manager)
		if !ok {
			return
		}

		var req struct {
			Value string `json:"value"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			helper.HandleError(c, http.StatusBadRequest, err, "invalid field payload")
			return
		}

		field := draft.Field(c.Param("field"))
		if err := store.SetField(c.Request.Context(), field, req.Value); err != nil {
			helper.HandleError(c, draftErrStatus(err), err, err.Error())
			return
		}
		helper.HandleSuccess(c, http.StatusOK, "field updated", store.State())
	}
}

// StageWizardFile stages an uploaded file into a slot and returns the
// preview URL alongside the refreshed state. Collection slots take the
// owning item id in the "itemId" form field.
func StageWizardFile(manager *draft.Manager, files *staging.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := storeFor(c, manager)
		if !ok {
			return
		}

		fileHeader, err := c.FormFile("file")
		if err != nil {
			helper.HandleError(c, http.StatusBadRequest, err, "file is required")
			return
		}

		slot := draft.Slot(c.Param("slot"))
		contentType := fileHeader.Header.Get("Content-Type")
		if slot == draft.SlotBrochure {
			if !strings.EqualFold(contentType, "application/pdf") {
				err := errors.New("brochure must be a PDF")
				helper.HandleError(c, http.StatusBadRequest, err, err.Error())
				return
			}
			if fileHeader.Size > maxBrochureSize {
				err := errors.New("brochure exceeds the 100MB limit")
				helper.HandleError(c, http.StatusBadRequest, err, err.Error())
				return
			}
		}

		src, err := fileHeader.Open()
		if err != nil {
			helper.HandleError(c, http.StatusBadRequest, err, "failed to read upload")
			return
		}
		defer src.Close()

		adminId := c.GetString(middleware.ContextAdminId)
		staged, err := files.Stage(adminId, fileHeader.Filename, contentType, fileHeader.Size, src)
		if err != nil {
			helper.HandleError(c, http.StatusInternalServerError, err, "failed to stage file")
			return
		}

		if err := store.StageFile(c.Request.Context(), slot, c.PostForm("itemId"), staged); err != nil {
			_ = files.Release(staged)
			helper.HandleError(c, draftErrStatus(err), err, err.Error())
			return
		}

		helper.HandleSuccessMeta(c, http.StatusOK, "file staged", store.State(), gin.H{
			"previewUrl": staged.PreviewURL,
		})
	}
}

// ClearWizardSlot drops the staged file from a slot; a stored reference
// from an earlier submission stays.
func ClearWizardSlot(manager *draft.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := storeFor(c, manager)
		if !ok {
			return
		}

		slot := draft.Slot(c.Param("slot"))
		if err := store.ClearSlot(c.Request.Context(), slot, c.Query("itemId")); err != nil {
			helper.HandleError(c, draftErrStatus(err), err, err.Error())
			return
		}
		helper.HandleSuccess(c, http.StatusOK, "slot cleared", store.State())
	}
}

func AddWizardItem(manager *draft.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := storeFor(c, manager)
		if !ok {
			return
		}

		col := draft.Collection(c.Param("collection"))
		id, err := store.AddItem(c.Request.Context(), col)
		if err != nil {
			helper.HandleError(c, draftErrStatus(err), err, err.Error())
			return
		}
		helper.HandleSuccessMeta(c, http.StatusCreated, "item added", store.State(), gin.H{
			"itemId": id,
		})
	}
}

func RemoveWizardItem(manager *draft.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := storeFor(c, manager)
		if !ok {
			return
		}

		col := draft.Collection(c.Param("collection"))
		if err := store.RemoveItem(c.Request.Context(), col, c.Param("id")); err != nil {
			helper.HandleError(c, draftErrStatus(err), err, err.Error())
			return
		}
		helper.HandleSuccess(c, http.StatusOK, "item removed", store.State())
	}
}

// SetWizardItemField updates a text field on one collection row. Which
// fields exist depends on the collection: floor plans and amenities have
// a title and alt, the fixed image grids only have alt.
func SetWizardItemField(manager *draft.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := storeFor(c, manager)
		if !ok {
			return
		}

		var req struct {
			Field string `json:"field" binding:"required"`
			Value string `json:"value"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			helper.HandleError(c, http.StatusBadRequest, err, "invalid item payload")
			return
		}

		ctx := c.Request.Context()
		col := draft.Collection(c.Param("collection"))
		id := c.Param("id")

		var err error
		switch {
		case col == draft.CollectionFloorPlans && req.Field == "title":
			err = store.SetFloorPlanTitle(ctx, id, req.Value)
		case col == draft.CollectionFloorPlans && req.Field == "alt":
			err = store.SetFloorPlanAlt(ctx, id, req.Value)
		case col == draft.CollectionProjectImages && req.Field == "alt":
			err = store.SetProjectImageAlt(ctx, id, req.Value)
		case col == draft.CollectionAmenities && req.Field == "title":
			err = store.SetAmenityTitle(ctx, id, req.Value)
		case col == draft.CollectionAmenities && req.Field == "alt":
			err = store.SetAmenityAlt(ctx, id, req.Value)
		case col == draft.CollectionUpdatedImages && req.Field == "alt":
			err = store.SetUpdatedImageAlt(ctx, id, req.Value)
		default:
			err = errors.New("unknown item field " + req.Field + " for " + string(col))
			helper.HandleError(c, http.StatusBadRequest, err, err.Error())
			return
		}
		if err != nil {
			helper.HandleError(c, draftErrStatus(err), err, err.Error())
			return
		}
		helper.HandleSuccess(c, http.StatusOK, "item updated", store.State())
	}
}

// WizardNext advances one section if the current one validates. A
// blocked move reports the failure but still returns the state.
func WizardNext(manager *draft.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := storeFor(c, manager)
		if !ok {
			return
		}

		if _, err := store.Next(c.Request.Context()); err != nil {
			helper.HandleError(c, http.StatusConflict, err, err.Error())
			return
		}
		helper.HandleSuccess(c, http.StatusOK, "moved to next section", store.State())
	}
}

func WizardPrev(manager *draft.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := storeFor(c, manager)
		if !ok {
			return
		}

		store.Prev(c.Request.Context())
		helper.HandleSuccess(c, http.StatusOK, "moved to previous section", store.State())
	}
}

func WizardJump(manager *draft.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := storeFor(c, manager)
		if !ok {
			return
		}

		target, err := strconv.Atoi(c.Param("section"))
		if err != nil {
			helper.HandleError(c, http.StatusBadRequest, err, "section must be a number")
			return
		}

		if _, err := store.JumpTo(c.Request.Context(), draft.Section(target)); err != nil {
			helper.HandleError(c, http.StatusConflict, err, err.Error())
			return
		}
		helper.HandleSuccess(c, http.StatusOK, "jumped to section", store.State())
	}
}

// SubmitWizard assembles the draft into the upstream multipart payload
// and sends it. With a projectId query the submission updates that
// project instead of creating one. Success resets the wizard; failure
// keeps the draft intact and surfaces the backend's field errors.
func SubmitWizard(manager *draft.Manager, files *staging.Store, client *upstream.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := storeFor(c, manager)
		if !ok {
			return
		}

		ctx := upstreamCtx(c)
		projectId := c.Query("projectId")

		result, err := store.Submit(c.Request.Context(), func(d *models.ProjectDraft) (*models.SubmitResult, error) {
			payload, err := assembler.Build(d, files)
			if err != nil {
				return nil, err
			}
			if projectId != "" {
				return client.UpdateProject(ctx, projectId, payload), nil
			}
			return client.CreateProject(ctx, payload), nil
		})
		if err != nil {
			helper.HandleError(c, draftErrStatus(err), err, err.Error())
			return
		}

		if !result.Success {
			helper.HandleFieldErrors(c, http.StatusUnprocessableEntity, errors.New(result.Message), result.Message, result.FieldErrors)
			return
		}
		helper.HandleSuccess(c, http.StatusOK, result.Message, result)
	}
}

// ResetWizard discards the draft, releases every staged file and clears
// the persisted snapshot.
func ResetWizard(manager *draft.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := storeFor(c, manager)
		if !ok {
			return
		}

		if err := store.Reset(c.Request.Context()); err != nil {
			helper.HandleError(c, http.StatusInternalServerError, err, "failed to reset draft")
			return
		}
		helper.HandleSuccess(c, http.StatusOK, "draft reset", store.State())
	}
}
