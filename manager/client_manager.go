package manager

import (
	"sync"

	"github.com/appuploader/appstore-connect-v3/connect"
)

// ClientManager hands out one connect.Client per API key so every caller in
// the process shares the same cached bearer token.
type ClientManager struct {
	clients map[string]*connect.Client
	mu      sync.Mutex
}

var (
	clientManagerInstance *ClientManager
	onceClientManager     sync.Once
)

func GetClientManager() *ClientManager {
	onceClientManager.Do(func() {
		clientManagerInstance = &ClientManager{
			clients: make(map[string]*connect.Client),
		}
	})
	return clientManagerInstance
}

// GetClient returns the cached client for the issuer/key pair, or nil.
func (m *ClientManager) GetClient(issuerID string, keyID string) *connect.Client {
	m.mu.Lock()
	defer m.mu.Unlock()
	if client, ok := m.clients[issuerID+"/"+keyID]; ok {
		return client
	}
	return nil
}

// NewConnectClient builds (or reuses) a client for the config. Credential
// validation happens in connect.NewClient, so a bad key fails here once
// instead of on every call site.
func (m *ClientManager) NewConnectClient(config connect.Config) (*connect.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := config.IssuerID + "/" + config.KeyID
	if client, ok := m.clients[key]; ok {
		return client, nil
	}
	client, e := connect.NewClient(config)
	if e != nil {
		return nil, e
	}
	m.clients[key] = client
	return client, nil
}
