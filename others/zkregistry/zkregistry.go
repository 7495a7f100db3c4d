// Cluster-wide GUID publication over ZooKeeper. Each service instance
// publishes the GUIDs of the interfaces it exposes as znodes keyed by the
// canonical GUID text, so two instances accidentally claiming the same
// GUID (a copy-pasted literal, usually) are detected at startup instead of
// at message-routing time.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/go-zookeeper/zk"

	"github.com/lab2439/guid"
)

// ZKRootPath is the root path in ZooKeeper under which GUID claims live.
const ZKRootPath = "/guid_registry"

// NodeInfo is the JSON payload stored on each claim node.
type NodeInfo struct {
	Instance   string `json:"instance"`    // instance that owns the claim
	Name       string `json:"name"`        // human-readable interface name
	CreateTime int64  `json:"create_time"` // creation timestamp (ms)
	LastTime   int64  `json:"last_time"`   // last heartbeat timestamp (ms)
}

// Publisher maintains this instance's GUID claims in ZooKeeper.
type Publisher struct {
	mu       sync.Mutex
	zkClient *zk.Conn
	service  string
	instance string
	claims   map[string]guid.Guid // claim name -> published GUID
}

// NewPublisher connects to ZooKeeper and prepares the claim path for the
// given service. A heartbeat goroutine keeps the claims fresh.
func NewPublisher(zkServers []string, service, instance string) (*Publisher, error) {
	c, _, err := zk.Connect(zkServers, time.Second*5)
	if err != nil {
		return nil, fmt.Errorf("connect zk failed: %w", err)
	}

	p := &Publisher{
		zkClient: c,
		service:  service,
		instance: instance,
		claims:   make(map[string]guid.Guid),
	}

	p.ensurePath(ZKRootPath)
	p.ensurePath(p.servicePath())

	go p.scheduledHeartbeat()
	return p, nil
}

func (p *Publisher) servicePath() string {
	return fmt.Sprintf("%s/%s", ZKRootPath, p.service)
}

// nodeKey derives the znode path for a GUID claim. The canonical text form
// is the key, so equality of claims is equality of GUIDs.
func (p *Publisher) nodeKey(id guid.Guid) string {
	return fmt.Sprintf("%s/%s", p.servicePath(), id)
}

// Publish claims a GUID for this instance. If the GUID is already claimed
// by a different instance, the collision is reported as an error; claiming
// the same GUID again from the same instance is a no-op.
func (p *Publisher) Publish(name string, id guid.Guid) error {
	nodeKey := p.nodeKey(id)

	exists, _, err := p.zkClient.Exists(nodeKey)
	if err != nil {
		return fmt.Errorf("check claim existence failed: %w", err)
	}

	if exists {
		data, _, err := p.zkClient.Get(nodeKey)
		if err != nil {
			return fmt.Errorf("get claim info failed: %w", err)
		}
		var info NodeInfo
		json.Unmarshal(data, &info)

		if info.Instance != p.instance {
			return fmt.Errorf("guid %s already claimed by instance %q as %q", id, info.Instance, info.Name)
		}
		log.Printf("claim %s (%s) already held by this instance", id, name)
	} else {
		now := time.Now().UnixMilli()
		info := NodeInfo{
			Instance:   p.instance,
			Name:       name,
			CreateTime: now,
			LastTime:   now,
		}
		bytes, _ := json.Marshal(info)
		if _, err := p.zkClient.Create(nodeKey, bytes, zk.FlagEphemeral, zk.WorldACL(zk.PermAll)); err != nil {
			return fmt.Errorf("create claim failed: %w", err)
		}
		log.Printf("claimed %s (%s)", id, name)
	}

	p.mu.Lock()
	p.claims[name] = id
	p.mu.Unlock()
	return nil
}

// List returns every GUID currently claimed under this service, parsed
// back from the znode names.
func (p *Publisher) List() ([]guid.Guid, error) {
	children, _, err := p.zkClient.Children(p.servicePath())
	if err != nil {
		return nil, fmt.Errorf("list claims failed: %w", err)
	}

	ids := make([]guid.Guid, 0, len(children))
	for _, child := range children {
		id, err := guid.Parse(child)
		if err != nil {
			// A foreign znode under our path; skip it but make noise.
			log.Printf("ignoring non-GUID znode %q: %v", child, err)
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// scheduledHeartbeat periodically refreshes the LastTime of every claim
// held by this instance.
func (p *Publisher) scheduledHeartbeat() {
	ticker := time.NewTicker(3 * time.Second)

	for range ticker.C {
		p.mu.Lock()
		claims := make(map[string]guid.Guid, len(p.claims))
		for name, id := range p.claims {
			claims[name] = id
		}
		p.mu.Unlock()

		now := time.Now().UnixMilli()
		for name, id := range claims {
			info := NodeInfo{
				Instance: p.instance,
				Name:     name,
				LastTime: now,
			}
			data, _ := json.Marshal(info)

			// Ignore errors, since ZooKeeper may occasionally be unavailable
			p.zkClient.Set(p.nodeKey(id), data, -1)
		}
	}
}

// ensurePath creates a ZK path if needed.
// Note: This is a simple check/create for demonstration; use recursive creation in production.
func (p *Publisher) ensurePath(path string) {
	exists, _, _ := p.zkClient.Exists(path)
	if !exists {
		p.zkClient.Create(path, []byte{}, 0, zk.WorldACL(zk.PermAll))
	}
}

func main() {
	publisher, err := NewPublisher([]string{"127.0.0.1:2181"}, "media-router", "node-1")
	if err != nil {
		log.Fatalf("init publisher: %v", err)
	}

	interfaces := map[string]guid.Guid{
		"audio.capture": guid.MustParse("{6B29FC40-CA47-1067-B31D-00DD010662DA}"),
		"video.render":  guid.MustParse("{D1B24A4E-0779-4B7A-9E41-7A038B847B22}"),
	}

	for name, id := range interfaces {
		if err := publisher.Publish(name, id); err != nil {
			log.Fatalf("publish %s: %v", name, err)
		}
	}

	claimed, err := publisher.List()
	if err != nil {
		log.Fatalf("list claims: %v", err)
	}
	for _, id := range claimed {
		log.Printf("claimed in cluster: %s", id)
	}

	select {} // keep heartbeating
}
