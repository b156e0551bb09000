package payment

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alumnet/backend/internal/pkg/helpers"
)

func newTestClient(url string) *PaystackClient {
	return NewPaystackClient(PaystackConfig{
		SecretKey: "sk_test_123",
		BaseURL:   url,
		Timeout:   2 * time.Second,
		Retry:     helpers.RetryPolicy{MaxRetries: 2, InitialInterval: time.Millisecond, MaxInterval: time.Millisecond},
	}, nil, zerolog.Nop())
}

func TestInitializeSendsMinorUnits(t *testing.T) {
	var got map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/transaction/initialize", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"status":true,"message":"Authorization URL created","data":{"authorization_url":"https://checkout.paystack.com/abc","access_code":"abc","reference":"don_1"}}`))
	}))
	defer srv.Close()

	res, err := newTestClient(srv.URL).Initialize(context.Background(), InitializeRequest{
		Email:       "ada@example.com",
		AmountMinor: 10000,
		Currency:    "USD",
		Reference:   "don_1",
		CallbackURL: "https://alumni.example.com/donations/callback",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://checkout.paystack.com/abc", res.AuthorizationURL)
	assert.Equal(t, "10000", got["amount"])
	assert.Equal(t, "USD", got["currency"])
	assert.Equal(t, "don_1", got["reference"])
	assert.Equal(t, "https://alumni.example.com/donations/callback", got["callback_url"])
}

func TestInitializeIsNotRetried(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Initialize(context.Background(), InitializeRequest{Reference: "don_1"})
	assert.ErrorIs(t, err, ErrGateway)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestVerifySuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transaction/verify/don_1", r.URL.Path)
		_, _ = w.Write([]byte(`{"status":true,"message":"Verification successful","data":{"status":"success","amount":10000,"currency":"USD","reference":"don_1"}}`))
	}))
	defer srv.Close()

	res, err := newTestClient(srv.URL).Verify(context.Background(), "don_1")
	require.NoError(t, err)
	assert.True(t, res.Succeeded())
	assert.Equal(t, int64(10000), res.AmountMinor)
	assert.Equal(t, "USD", res.Currency)
}

func TestVerifyReportsAbandonedTransaction(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":true,"message":"Verification successful","data":{"status":"abandoned","amount":10000,"currency":"NGN","reference":"don_2"}}`))
	}))
	defer srv.Close()

	res, err := newTestClient(srv.URL).Verify(context.Background(), "don_2")
	require.NoError(t, err)
	assert.False(t, res.Succeeded())
}

func TestVerifyRetriesServerErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"status":true,"message":"ok","data":{"status":"success","amount":500,"currency":"NGN","reference":"don_3"}}`))
	}))
	defer srv.Close()

	res, err := newTestClient(srv.URL).Verify(context.Background(), "don_3")
	require.NoError(t, err)
	assert.True(t, res.Succeeded())
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestVerifyDoesNotRetryClientErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"status":false,"message":"Transaction reference not found"}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Verify(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrGateway))
	assert.True(t, errors.Is(err, ErrRejected))
	assert.Contains(t, err.Error(), "Transaction reference not found")
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestVerifyGivesUpAfterPolicy(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Verify(context.Background(), "don_4")
	assert.ErrorIs(t, err, ErrGateway)
	assert.NotErrorIs(t, err, ErrRejected)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestVerifyStatusFalseIsRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":false,"message":"Invalid reference"}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Verify(context.Background(), "don_5")
	assert.ErrorIs(t, err, ErrRejected)
}

func TestVerifyMalformedResponseIsNotRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>maintenance</html>`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Verify(context.Background(), "don_6")
	assert.ErrorIs(t, err, ErrGateway)
	assert.NotErrorIs(t, err, ErrRejected)
}

func TestVerifyReadsBackDonorMetadata(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/transaction/verify/don_7" {
			_, _ = w.Write([]byte(`{"status":true,"message":"ok","data":{"status":"success","amount":500,"currency":"NGN","reference":"don_7","metadata":{"donor_id":"user-1"}}}`))
			return
		}
		_, _ = w.Write([]byte(`{"status":true,"message":"ok","data":{"status":"success","amount":500,"currency":"NGN","reference":"don_8","metadata":""}}`))
	}))
	defer srv.Close()

	res, err := newTestClient(srv.URL).Verify(context.Background(), "don_7")
	require.NoError(t, err)
	assert.Equal(t, "user-1", res.DonorID())

	res, err = newTestClient(srv.URL).Verify(context.Background(), "don_8")
	require.NoError(t, err)
	assert.Empty(t, res.DonorID())
}
