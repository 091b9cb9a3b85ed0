package inventory

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

func testRouter(t *testing.T) *mux.Router {
	t.Helper()
	repo := testRepo(t)
	r := mux.NewRouter()
	NewTenantHTTP(repo).RegisterRoutes(r)
	NewVrfHTTP(repo).RegisterRoutes(r)
	NewSviHTTP(repo).RegisterRoutes(r)
	return r
}

func do(t *testing.T, r *mux.Router, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd *bytes.Reader
	if body == "" {
		rd = bytes.NewReader(nil)
	} else {
		rd = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
	return m
}

func TestTenantLifecycleHTTP(t *testing.T) {
	r := testRouter(t)

	// create
	w := do(t, r, http.MethodPost, "/tenants", `{"name":"acme","mac_vrf_vni_base":10000}`)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, "/tenants/1", w.Header().Get("Location"))
	body := decode(t, w)
	require.EqualValues(t, 1, body["tenant_id"])
	require.Equal(t, "acme", body["name"])
	require.EqualValues(t, 10000, body["mac_vrf_vni_base"])

	// read back
	w = do(t, r, http.MethodGet, "/tenants/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, body, decode(t, w))

	// duplicate name
	w = do(t, r, http.MethodPost, "/tenants", `{"name":"acme","mac_vrf_vni_base":20000}`)
	require.Equal(t, http.StatusConflict, w.Code)
	require.Contains(t, decode(t, w), "error")

	// full replacement; the id in the body loses to the path
	w = do(t, r, http.MethodPut, "/tenants/1", `{"tenant_id":42,"name":"acme-2","mac_vrf_vni_base":11000}`)
	require.Equal(t, http.StatusOK, w.Code)
	body = decode(t, w)
	require.EqualValues(t, 1, body["tenant_id"])
	require.Equal(t, "acme-2", body["name"])

	// delete, then gone
	w = do(t, r, http.MethodDelete, "/tenants/1", "")
	require.Equal(t, http.StatusNoContent, w.Code)
	require.Empty(t, w.Body.Bytes())

	w = do(t, r, http.MethodGet, "/tenants/1", "")
	require.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, r, http.MethodDelete, "/tenants/1", "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestMalformedJSONRejected(t *testing.T) {
	r := testRouter(t)

	for _, path := range []string{"/tenants", "/vrfs", "/svis"} {
		w := do(t, r, http.MethodPost, path, `{"name":`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Contains(t, decode(t, w), "error")
	}

	// nothing was written
	w := do(t, r, http.MethodGet, "/tenants", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestVrfDanglingTenantHTTP(t *testing.T) {
	r := testRouter(t)

	w := do(t, r, http.MethodPost, "/vrfs", `{"tenant_id":999,"name":"red","vrf_vni":5001}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, decode(t, w)["error"], "tenant 999")
}

func TestSviTagsCanonicalHTTP(t *testing.T) {
	r := testRouter(t)

	w := do(t, r, http.MethodPost, "/tenants", `{"name":"acme","mac_vrf_vni_base":10000}`)
	require.Equal(t, http.StatusCreated, w.Code)
	w = do(t, r, http.MethodPost, "/vrfs", `{"tenant_id":1,"name":"red","vrf_vni":5001}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, r, http.MethodPost, "/svis",
		`{"vrf_id":1,"vlan_id":100,"name":"web","enabled":true,"ip_address_virtual":"10.0.0.1/24","tags":["prod","edge","prod"]}`)
	require.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	require.Equal(t, []any{"edge", "prod"}, body["tags"])
	require.Equal(t, "10.0.0.1/24", body["ip_address_virtual"])

	w = do(t, r, http.MethodGet, "/svis/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, []any{"edge", "prod"}, decode(t, w)["tags"])

	// content type on every JSON response
	require.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
}

func TestDeleteOrderEnforcedHTTP(t *testing.T) {
	r := testRouter(t)

	do(t, r, http.MethodPost, "/tenants", `{"name":"acme","mac_vrf_vni_base":10000}`)
	do(t, r, http.MethodPost, "/vrfs", `{"tenant_id":1,"name":"red","vrf_vni":5001}`)
	do(t, r, http.MethodPost, "/svis", `{"vrf_id":1,"vlan_id":100,"name":"web","enabled":true,"tags":[]}`)

	w := do(t, r, http.MethodDelete, "/tenants/1", "")
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodDelete, "/vrfs/1", "")
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodDelete, "/svis/1", "")
	require.Equal(t, http.StatusNoContent, w.Code)
	w = do(t, r, http.MethodDelete, "/vrfs/1", "")
	require.Equal(t, http.StatusNoContent, w.Code)
	w = do(t, r, http.MethodDelete, "/tenants/1", "")
	require.Equal(t, http.StatusNoContent, w.Code)
}

func TestVlanBoundsHTTP(t *testing.T) {
	r := testRouter(t)

	do(t, r, http.MethodPost, "/tenants", `{"name":"acme","mac_vrf_vni_base":10000}`)
	do(t, r, http.MethodPost, "/vrfs", `{"tenant_id":1,"name":"red","vrf_vni":5001}`)

	w := do(t, r, http.MethodPost, "/svis", `{"vrf_id":1,"vlan_id":0,"name":"a","enabled":true,"tags":[]}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	w = do(t, r, http.MethodPost, "/svis", `{"vrf_id":1,"vlan_id":4095,"name":"a","enabled":true,"tags":[]}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	w = do(t, r, http.MethodPost, "/svis", `{"vrf_id":1,"vlan_id":1,"name":"a","enabled":true,"tags":[]}`)
	require.Equal(t, http.StatusCreated, w.Code)
	w = do(t, r, http.MethodPost, "/svis", `{"vrf_id":1,"vlan_id":4094,"name":"b","enabled":true,"tags":[]}`)
	require.Equal(t, http.StatusCreated, w.Code)
}

func TestBadCidrHTTP(t *testing.T) {
	r := testRouter(t)

	do(t, r, http.MethodPost, "/tenants", `{"name":"acme","mac_vrf_vni_base":10000}`)
	do(t, r, http.MethodPost, "/vrfs", `{"tenant_id":1,"name":"red","vrf_vni":5001}`)

	w := do(t, r, http.MethodPost, "/svis",
		`{"vrf_id":1,"vlan_id":100,"name":"web","enabled":true,"ip_address_virtual":"not-a-cidr","tags":[]}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNonNumericIDIs404(t *testing.T) {
	r := testRouter(t)

	w := do(t, r, http.MethodGet, "/tenants/abc", "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestListRoutesHTTP(t *testing.T) {
	r := testRouter(t)

	do(t, r, http.MethodPost, "/tenants", `{"name":"acme","mac_vrf_vni_base":10000}`)
	do(t, r, http.MethodPost, "/vrfs", `{"tenant_id":1,"name":"red","vrf_vni":5001}`)
	do(t, r, http.MethodPost, "/vrfs", `{"tenant_id":1,"name":"blue","vrf_vni":5002}`)

	w := do(t, r, http.MethodGet, "/vrfs", "")
	require.Equal(t, http.StatusOK, w.Code)
	var vs []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &vs))
	require.Len(t, vs, 2)
	require.EqualValues(t, 1, vs[0]["vrf_id"])
	require.EqualValues(t, 2, vs[1]["vrf_id"])

	w = do(t, r, http.MethodGet, "/svis", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}
