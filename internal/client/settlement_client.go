package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
)

type transferRequest struct {
	FromID      string `json:"from_id"`
	ToID        string `json:"to_id"`
	Amount      uint64 `json:"amount"`
	OperationID string `json:"operation_id"`
}

type frozenResponse struct {
	Frozen bool `json:"frozen"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// HTTPSettlementClient talks to the settlement-asset service: the external
// balance store that actually moves club funds and knows which accounts are
// frozen. Freeze state heard on the settlement event stream is cached so
// repeated checks skip the round trip; cache misses fall through to HTTP.
type HTTPSettlementClient struct {
	Address string

	mu     sync.RWMutex
	frozen map[string]bool
}

func NewHTTPSettlementClient(address string) (*HTTPSettlementClient, error) {
	return &HTTPSettlementClient{
		Address: address,
		frozen:  make(map[string]bool),
	}, nil
}

func (c *HTTPSettlementClient) Transfer(fromID, toID string, amount uint64, operationID string) error {
	requestBodyBytes, err := json.Marshal(transferRequest{
		FromID:      fromID,
		ToID:        toID,
		Amount:      amount,
		OperationID: operationID,
	})
	if err != nil {
		return err
	}

	response, err := http.Post(fmt.Sprintf("%s/accounts/transfer", c.Address), "application/json", bytes.NewBuffer(requestBodyBytes))
	if err != nil {
		return err
	}
	defer response.Body.Close()
	responseBodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return err
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		return nil
	}
	var errResponse errorResponse
	if err := json.Unmarshal(responseBodyBytes, &errResponse); err != nil {
		return err
	}
	return errors.New(errResponse.Error)
}

func (c *HTTPSettlementClient) IsFrozen(memberID string) (bool, error) {
	c.mu.RLock()
	frozen, cached := c.frozen[memberID]
	c.mu.RUnlock()
	if cached {
		return frozen, nil
	}

	response, err := http.Get(fmt.Sprintf("%s/accounts/%s/frozen", c.Address, memberID))
	if err != nil {
		return false, err
	}
	defer response.Body.Close()
	responseBodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return false, err
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		var frozenResp frozenResponse
		if err := json.Unmarshal(responseBodyBytes, &frozenResp); err != nil {
			return false, err
		}
		return frozenResp.Frozen, nil
	}
	var errResponse errorResponse
	if err := json.Unmarshal(responseBodyBytes, &errResponse); err != nil {
		return false, err
	}
	return false, errors.New(errResponse.Error)
}

// MarkFrozen updates the freeze cache from the settlement event stream.
func (c *HTTPSettlementClient) MarkFrozen(memberID string, frozen bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.frozen[memberID] = frozen
}

// FrozenCount reports how many accounts the cache currently marks frozen.
func (c *HTTPSettlementClient) FrozenCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	count := 0
	for _, frozen := range c.frozen {
		if frozen {
			count++
		}
	}
	return count
}
