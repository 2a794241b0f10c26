package admin

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"teentops_server/database"
	"teentops_server/lib"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// resource wires generic list/get/create/update/delete handlers for one
// admin-managed table. Which columns an update may touch is driven by the
// writable whitelist; computed and identity columns are never writable.
type resource[T any] struct {
	logger   *gecho.Logger
	db       *database.DB
	name     string          // URL path segment, e.g. "products"
	writable map[string]bool // columns an update payload may set
	sortBy   string
	sortDir  database.OrderDirection
}

func newResource[T any](logger *gecho.Logger, db *database.DB, name string, writable []string, sortBy string, sortDir database.OrderDirection) *resource[T] {
	set := make(map[string]bool, len(writable))
	for _, col := range writable {
		set[col] = true
	}
	return &resource[T]{
		logger:   logger,
		db:       db,
		name:     name,
		writable: set,
		sortBy:   sortBy,
		sortDir:  sortDir,
	}
}

func (res *resource[T]) register(r chi.Router) {
	r.Get("/"+res.name, res.list)
	r.Get("/"+res.name+"/{id}", res.get)
	r.Post("/"+res.name, res.create)
	if len(res.writable) > 0 {
		r.Put("/"+res.name+"/{id}", res.update)
	}
	r.Delete("/"+res.name+"/{id}", res.remove)
}

func (res *resource[T]) list(w http.ResponseWriter, r *http.Request) {
	page := 1
	pageSize := 50

	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if val, err := strconv.Atoi(pageStr); err == nil && val > 0 {
			page = val
		}
	}
	if pageSizeStr := r.URL.Query().Get("page_size"); pageSizeStr != "" {
		if val, err := strconv.Atoi(pageSizeStr); err == nil && val > 0 {
			pageSize = val
		}
	}

	query := database.Query[T](res.db).OrderBy(res.sortBy, res.sortDir)

	result, err := database.Paginate(query, r.Context(), page, pageSize)
	if err != nil {
		res.logger.Error("Failed to list records",
			gecho.Field("resource", res.name),
			gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.admin.failedToList"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"records":    result.Data,
			"pagination": result.Pagination,
		}),
		gecho.Send(),
	)
}

func (res *resource[T]) get(w http.ResponseWriter, r *http.Request) {
	id, ok := res.parseID(w, r)
	if !ok {
		return
	}

	record, err := database.FindByID[T](res.db, r.Context(), id)
	if err != nil {
		res.logger.Error("Failed to fetch record",
			gecho.Field("resource", res.name),
			gecho.Field("id", id),
			gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.admin.failedToFetch"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}
	if record == nil {
		gecho.NotFound(w,
			gecho.WithMessage("error.admin.recordNotFound"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{"record": record}),
		gecho.Send(),
	)
}

func (res *resource[T]) create(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[T](r)
	if err != nil {
		var ve *lib.ValidationError
		if errors.As(err, &ve) {
			gecho.BadRequest(w,
				gecho.WithMessage("error.admin.invalidRequestBody"),
				gecho.WithData(ve.FieldMap()),
				gecho.Send(),
			)
			return
		}

		gecho.BadRequest(w,
			gecho.WithMessage("error.admin.invalidRequestBody"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	record, err := database.Create(res.db, r.Context(), body)
	if err != nil {
		if lib.IsUniqueViolation(err) {
			gecho.Conflict(w,
				gecho.WithMessage("error.admin.duplicateRecord"),
				gecho.WithData(map[string]string{"resource": res.name}),
				gecho.Send(),
			)
			return
		}
		if lib.IsForeignKeyViolation(err) {
			gecho.BadRequest(w,
				gecho.WithMessage("error.admin.unknownReference"),
				gecho.WithData(map[string]string{"resource": res.name}),
				gecho.Send(),
			)
			return
		}

		res.logger.Error("Failed to create record",
			gecho.Field("resource", res.name),
			gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.admin.failedToCreate"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	gecho.Created(w,
		gecho.WithMessage("success.admin.recordCreated"),
		gecho.WithData(map[string]any{"record": record}),
		gecho.Send(),
	)
}

func (res *resource[T]) update(w http.ResponseWriter, r *http.Request) {
	id, ok := res.parseID(w, r)
	if !ok {
		return
	}

	defer r.Body.Close()
	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.admin.invalidRequestBody"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}
	if len(payload) == 0 {
		gecho.BadRequest(w,
			gecho.WithMessage("error.admin.emptyUpdate"),
			gecho.Send(),
		)
		return
	}

	// Reject any column outside the whitelist, naming the offender
	for col := range payload {
		if !res.writable[col] {
			gecho.BadRequest(w,
				gecho.WithMessage("error.admin.columnNotWritable"),
				gecho.WithData(map[string]string{"column": col}),
				gecho.Send(),
			)
			return
		}
	}

	affected, err := database.UpdateByID[T](res.db, r.Context(), id, payload)
	if err != nil {
		if lib.IsUniqueViolation(err) {
			gecho.Conflict(w,
				gecho.WithMessage("error.admin.duplicateRecord"),
				gecho.WithData(map[string]string{"resource": res.name}),
				gecho.Send(),
			)
			return
		}
		if lib.IsForeignKeyViolation(err) {
			gecho.BadRequest(w,
				gecho.WithMessage("error.admin.unknownReference"),
				gecho.WithData(map[string]string{"resource": res.name}),
				gecho.Send(),
			)
			return
		}

		res.logger.Error("Failed to update record",
			gecho.Field("resource", res.name),
			gecho.Field("id", id),
			gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.admin.failedToUpdate"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}
	if affected == 0 {
		gecho.NotFound(w,
			gecho.WithMessage("error.admin.recordNotFound"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.admin.recordUpdated"),
		gecho.Send(),
	)
}

func (res *resource[T]) remove(w http.ResponseWriter, r *http.Request) {
	id, ok := res.parseID(w, r)
	if !ok {
		return
	}

	affected, err := database.DeleteByID[T](res.db, r.Context(), id)
	if err != nil {
		if lib.IsForeignKeyViolation(err) {
			gecho.Conflict(w,
				gecho.WithMessage("error.admin.recordInUse"),
				gecho.WithData(map[string]string{"resource": res.name}),
				gecho.Send(),
			)
			return
		}

		res.logger.Error("Failed to delete record",
			gecho.Field("resource", res.name),
			gecho.Field("id", id),
			gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.admin.failedToDelete"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}
	if affected == 0 {
		gecho.NotFound(w,
			gecho.WithMessage("error.admin.recordNotFound"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.admin.recordDeleted"),
		gecho.Send(),
	)
}

func (res *resource[T]) parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil || id == uuid.Nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.admin.invalidRecordId"),
			gecho.Send(),
		)
		return uuid.Nil, false
	}
	return id, true
}
