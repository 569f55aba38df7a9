// Package endpoints registers the REST surface of the registry. The five
// CRUD operations for every record type come from one generic set of
// handlers parameterized by the type's descriptor.
package endpoints

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"devreg/pkg/record"
	"devreg/pkg/server"
)

// RegisterResource binds the full CRUD surface for one record type:
//
//	GET, POST /prefix/name - list records and create a new record
//	GET, PUT, DELETE /prefix/name/{id} - retrieve, update and delete one
//	                                     record by id
//
// The id segment matches decimal digits only; other paths never reach the
// instance handlers. Registrations are independent of each other and share
// nothing besides the router.
func RegisterResource[T any](s *server.Server, prefix string, typ *record.Type[T]) {
	store := record.NewStore(typ)
	base := "/" + strings.Trim(prefix, "/") + "/" + typ.Name
	instance := base + "/{id:[0-9]+}"

	s.Router.HandleFunc(base, handleList(s.DB, store)).Methods("GET")
	s.Router.HandleFunc(base, handleCreate(s.DB, store)).Methods("POST")
	s.Router.HandleFunc(instance, handleRetrieve(s.DB, store)).Methods("GET")
	s.Router.HandleFunc(instance, handleUpdate(s.DB, store)).Methods("PUT")
	s.Router.HandleFunc(instance, handleRemove(s.DB, store)).Methods("DELETE")

	s.Logger.Info().
		Str("resource", typ.Name).
		Str("collection", base).
		Str("instance", instance).
		Msg("registered resource")
}

// handleList serves the paginated collection listing. Pagination parameters
// are never rejected: anything malformed or out of range normalizes to page
// 1 / the default page size.
func handleList[T any](db *gorm.DB, store *record.Store[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		pageSize := record.Normalize(intParam(query, "page_size", record.DefaultPageSize), record.PageSizeLimit)

		var envelope map[string]any
		err := db.Transaction(func(tx *gorm.DB) error {
			total, err := store.Count(tx)
			if err != nil {
				return err
			}

			maxPage := record.MaxPage(total, pageSize)
			page := record.Normalize(intParam(query, "page", 1), maxPage)

			offset := (page - 1) * pageSize
			records, err := store.Select(tx, offset, pageSize)
			if err != nil {
				return err
			}

			data := make([]map[string]any, 0, len(records))
			for i := range records {
				data = append(data, store.Type().Mapping(&records[i]))
			}
			envelope = map[string]any{
				"page":      page,
				"page_size": pageSize,
				"max_page":  maxPage,
				"total":     total,
				"data":      data,
			}
			return nil
		})
		if err != nil {
			respondServerError(w, r, err)
			return
		}

		respondWithJSON(w, http.StatusOK, envelope)
	}
}

func handleRetrieve[T any](db *gorm.DB, store *record.Store[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := pathID(r)

		var rec *T
		err := db.Transaction(func(tx *gorm.DB) error {
			var err error
			rec, err = store.GetByID(tx, id)
			return err
		})
		if record.IsNotFound(err) {
			respondNotFound(w)
			return
		}
		if err != nil {
			respondServerError(w, r, err)
			return
		}

		respondWithJSON(w, http.StatusOK, store.Type().Mapping(rec))
	}
}

// handleCreate persists a new record from the form body. Any failure of the
// persistence call, constraint violations included, surfaces as a 400 with
// the failure description. Only that single call is wrapped; nothing else
// maps to 400 here.
func handleCreate[T any](db *gorm.DB, store *record.Store[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		var rec *T
		err := db.Transaction(func(tx *gorm.DB) error {
			var err error
			rec, err = store.Create(tx, r.PostForm)
			return err
		})
		if err != nil {
			respondWithJSON(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
			return
		}

		respondWithJSON(w, http.StatusCreated, store.Type().Mapping(rec))
	}
}

func handleUpdate[T any](db *gorm.DB, store *record.Store[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := pathID(r)
		if err := r.ParseForm(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		var rec *T
		err := db.Transaction(func(tx *gorm.DB) error {
			found, err := store.GetByID(tx, id)
			if err != nil {
				return err
			}
			rec, err = store.Update(tx, found, r.PostForm)
			return err
		})
		if record.IsNotFound(err) {
			respondNotFound(w)
			return
		}
		if err != nil {
			respondServerError(w, r, err)
			return
		}

		respondWithJSON(w, http.StatusOK, store.Type().Mapping(rec))
	}
}

// handleRemove deletes one record. A restrict-on-delete violation is not
// classified here: it falls through to the plain 500 path like any other
// storage failure.
func handleRemove[T any](db *gorm.DB, store *record.Store[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := pathID(r)

		err := db.Transaction(func(tx *gorm.DB) error {
			rec, err := store.GetByID(tx, id)
			if err != nil {
				return err
			}
			return store.Delete(tx, rec)
		})
		if record.IsNotFound(err) {
			respondNotFound(w)
			return
		}
		if err != nil {
			respondServerError(w, r, err)
			return
		}

		respondWithJSON(w, http.StatusOK, map[string]string{"message": "OK"})
	}
}

func pathID(r *http.Request) int64 {
	// The route pattern restricts id to decimal digits.
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	return id
}

// intParam reads an integer query parameter. An absent parameter yields the
// fallback; a present but non-integer value yields 0 so that Normalize
// collapses it to 1.
func intParam(query url.Values, key string, fallback int) int {
	if !query.Has(key) {
		return fallback
	}
	value, err := strconv.Atoi(query.Get(key))
	if err != nil {
		return 0
	}
	return value
}
