package favoriteController_test

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/lib/pq"
	matbuddyFactory "github.com/matbuddy/go-matbuddy/internal/factories/matbuddy-factory"
	mockedstore "github.com/matbuddy/go-matbuddy/internal/mocks/datastore/postgresql/matbuddy"
	favoriteModel "github.com/matbuddy/go-matbuddy/internal/models/favorite"
	db "github.com/matbuddy/go-matbuddy/internal/services/datastore/postgresql/matbuddy/sqlc"
	"github.com/matbuddy/go-matbuddy/pkg/tools/random"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func randomFavorite() db.Favorite {
	return db.Favorite{
		ID:       random.Int(1, 1000),
		UserID:   random.Int(1, 1000),
		RecipeID: random.Int(1, 1000),
	}
}

func TestCreate(t *testing.T) {
	favorite := randomFavorite()

	testCases := []struct {
		name          string
		body          map[string]interface{}
		buildStubs    func(store *mockedstore.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK",
			body: map[string]interface{}{
				"userId":   favorite.UserID,
				"recipeId": favorite.RecipeID,
			},
			buildStubs: func(store *mockedstore.MockStore) {
				createArgs := db.CreateFavoriteParams{
					UserID:   favorite.UserID,
					RecipeID: favorite.RecipeID,
				}
				store.EXPECT().
					CreateFavorite(gomock.Any(), gomock.Eq(createArgs)).
					Times(1).
					Return(favorite, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusCreated, recorder.Code)
				requireBodyMatchOK(t, recorder.Body)
			},
		},
		{
			name: "MissingUserID",
			body: map[string]interface{}{
				"recipeId": favorite.RecipeID,
			},
			buildStubs: func(store *mockedstore.MockStore) {
				store.EXPECT().
					CreateFavorite(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "MissingRecipeID",
			body: map[string]interface{}{
				"userId": favorite.UserID,
			},
			buildStubs: func(store *mockedstore.MockStore) {
				store.EXPECT().
					CreateFavorite(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "DuplicatePair",
			body: map[string]interface{}{
				"userId":   favorite.UserID,
				"recipeId": favorite.RecipeID,
			},
			buildStubs: func(store *mockedstore.MockStore) {
				store.EXPECT().
					CreateFavorite(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.Favorite{}, &pq.Error{Code: "23505"})
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusInternalServerError, recorder.Code)
			},
		},
		{
			name: "UnknownUserOrRecipe",
			body: map[string]interface{}{
				"userId":   favorite.UserID,
				"recipeId": favorite.RecipeID,
			},
			buildStubs: func(store *mockedstore.MockStore) {
				store.EXPECT().
					CreateFavorite(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.Favorite{}, &pq.Error{Code: "23503"})
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusForbidden, recorder.Code)
			},
		},
		{
			name: "InternalError",
			body: map[string]interface{}{
				"userId":   favorite.UserID,
				"recipeId": favorite.RecipeID,
			},
			buildStubs: func(store *mockedstore.MockStore) {
				store.EXPECT().
					CreateFavorite(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.Favorite{}, sql.ErrConnDone)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusInternalServerError, recorder.Code)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mockedstore.NewMockStore(ctrl)
			tc.buildStubs(store)

			server := matbuddyFactory.New(store)
			recorder := httptest.NewRecorder()

			body, err := json.Marshal(tc.body)
			require.NoError(t, err)

			request, err := http.NewRequest(http.MethodPost, "/api/favorites", bytes.NewReader(body))
			require.NoError(t, err)

			server.Router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}

func TestList(t *testing.T) {
	favorite := randomFavorite()

	testCases := []struct {
		name          string
		query         string
		buildStubs    func(store *mockedstore.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name:  "OK",
			query: fmt.Sprintf("?userId=%d", favorite.UserID),
			buildStubs: func(store *mockedstore.MockStore) {
				store.EXPECT().
					ListFavoritesByUser(gomock.Any(), gomock.Eq(favorite.UserID)).
					Times(1).
					Return([]db.Favorite{favorite}, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
				requireBodyMatchFavorites(t, recorder.Body, []db.Favorite{favorite})
			},
		},
		{
			name:  "Empty",
			query: fmt.Sprintf("?userId=%d", favorite.UserID),
			buildStubs: func(store *mockedstore.MockStore) {
				store.EXPECT().
					ListFavoritesByUser(gomock.Any(), gomock.Eq(favorite.UserID)).
					Times(1).
					Return([]db.Favorite{}, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
				require.Equal(t, "[]", strings.TrimSpace(recorder.Body.String()))
			},
		},
		{
			name:  "MissingUserID",
			query: "",
			buildStubs: func(store *mockedstore.MockStore) {
				store.EXPECT().
					ListFavoritesByUser(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name:  "ZeroUserID",
			query: "?userId=0",
			buildStubs: func(store *mockedstore.MockStore) {
				store.EXPECT().
					ListFavoritesByUser(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name:  "InternalError",
			query: fmt.Sprintf("?userId=%d", favorite.UserID),
			buildStubs: func(store *mockedstore.MockStore) {
				store.EXPECT().
					ListFavoritesByUser(gomock.Any(), gomock.Any()).
					Times(1).
					Return(nil, sql.ErrConnDone)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusInternalServerError, recorder.Code)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mockedstore.NewMockStore(ctrl)
			tc.buildStubs(store)

			server := matbuddyFactory.New(store)
			recorder := httptest.NewRecorder()

			request, err := http.NewRequest(http.MethodGet, "/api/favorites"+tc.query, nil)
			require.NoError(t, err)

			server.Router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}

func TestDelete(t *testing.T) {
	favorite := randomFavorite()

	testCases := []struct {
		name          string
		body          map[string]interface{}
		buildStubs    func(store *mockedstore.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK",
			body: map[string]interface{}{
				"userId":   favorite.UserID,
				"recipeId": favorite.RecipeID,
			},
			buildStubs: func(store *mockedstore.MockStore) {
				deleteArgs := db.DeleteFavoriteParams{
					UserID:   favorite.UserID,
					RecipeID: favorite.RecipeID,
				}
				store.EXPECT().
					DeleteFavorite(gomock.Any(), gomock.Eq(deleteArgs)).
					Times(1).
					Return(nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
				requireBodyMatchOK(t, recorder.Body)
			},
		},
		{
			name: "NonexistentLinkIsSuccess",
			body: map[string]interface{}{
				"userId":   favorite.UserID,
				"recipeId": favorite.RecipeID,
			},
			buildStubs: func(store *mockedstore.MockStore) {
				// zero rows affected surfaces as a nil error from the store
				store.EXPECT().
					DeleteFavorite(gomock.Any(), gomock.Any()).
					Times(1).
					Return(nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
			},
		},
		{
			name: "MissingFields",
			body: map[string]interface{}{
				"userId": favorite.UserID,
			},
			buildStubs: func(store *mockedstore.MockStore) {
				store.EXPECT().
					DeleteFavorite(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "InternalError",
			body: map[string]interface{}{
				"userId":   favorite.UserID,
				"recipeId": favorite.RecipeID,
			},
			buildStubs: func(store *mockedstore.MockStore) {
				store.EXPECT().
					DeleteFavorite(gomock.Any(), gomock.Any()).
					Times(1).
					Return(sql.ErrConnDone)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusInternalServerError, recorder.Code)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mockedstore.NewMockStore(ctrl)
			tc.buildStubs(store)

			server := matbuddyFactory.New(store)
			recorder := httptest.NewRecorder()

			body, err := json.Marshal(tc.body)
			require.NoError(t, err)

			request, err := http.NewRequest(http.MethodDelete, "/api/favorites", bytes.NewReader(body))
			require.NoError(t, err)

			server.Router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}

func requireBodyMatchOK(t *testing.T, body *bytes.Buffer) {
	var res map[string]bool
	err := json.Unmarshal(body.Bytes(), &res)
	require.NoError(t, err)
	require.True(t, res["ok"])
}

func requireBodyMatchFavorites(t *testing.T, body *bytes.Buffer, favorites []db.Favorite) {
	var gotFavorites []favoriteModel.ListResponse
	err := json.Unmarshal(body.Bytes(), &gotFavorites)
	require.NoError(t, err)

	require.Equal(t, len(favorites), len(gotFavorites))
	for i, favorite := range favorites {
		require.Equal(t, favoriteModel.ListResponse(favorite), gotFavorites[i])
	}
}
