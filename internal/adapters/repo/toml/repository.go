package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/B-1P/ledtomato/internal/domain"
	"github.com/B-1P/ledtomato/internal/ports"
)

const (
	dataDirKey       = "data.dir"
	devicesFileMode  = 0o600
	devicesDirMode   = 0o700
	defaultDataDir   = ".ledtomato"
	devicesFileName  = "devices.toml"
	tempFilePattern  = ".devices-*.toml.tmp"
	maxCachedDevices = 16
)

// Repository is the device cache, one TOML file rewritten atomically on every
// save.
type Repository struct {
	devicesPath string
	mu          *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.DeviceCache = (*Repository)(nil)

func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	dataDir := cfg.GetString(dataDirKey)
	if dataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		dataDir = filepath.Join(homeDir, defaultDataDir)
	}

	devicesPath, err := normalizeDevicesPath(filepath.Join(dataDir, devicesFileName))
	if err != nil {
		return nil, err
	}

	return &Repository{devicesPath: devicesPath, mu: lockForPath(devicesPath)}, nil
}

func (r *Repository) Path() string {
	return r.devicesPath
}

// Save upserts devices keyed by host:port.
func (r *Repository) Save(ctx context.Context, devices ...domain.Device) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	for _, device := range devices {
		if device.Address.IsZero() {
			continue
		}

		encoded := toSchema(device)
		updated := false
		for i := range file.Devices {
			if sameAddress(file.Devices[i], encoded) {
				file.Devices[i] = mergeSchema(file.Devices[i], encoded)
				updated = true
				break
			}
		}
		if !updated {
			file.Devices = append(file.Devices, encoded)
		}
	}
	if len(file.Devices) > maxCachedDevices {
		file.Devices = file.Devices[len(file.Devices)-maxCachedDevices:]
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.writeSchema(file)
}

func (r *Repository) List(ctx context.Context) ([]domain.Device, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	devices := make([]domain.Device, 0, len(file.Devices))
	for _, entry := range file.Devices {
		devices = append(devices, fromSchema(entry))
	}

	return devices, nil
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.devicesPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{}, nil
		}
		return fileSchema{}, fmt.Errorf("read devices file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode devices file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func normalizeDevicesPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve devices path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.devicesPath), devicesDirMode); err != nil {
		return fmt.Errorf("create devices directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode devices file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.devicesPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp devices file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp devices file: %w", err)
	}

	if err := tempFile.Chmod(devicesFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp devices file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp devices file: %w", err)
	}

	if err := os.Rename(tempName, r.devicesPath); err != nil {
		return fmt.Errorf("replace devices file: %w", err)
	}

	cleanup = false
	return nil
}

func sameAddress(a, b deviceSchema) bool {
	return a.Host == b.Host && a.Port == b.Port
}

// mergeSchema keeps names learned from discovery when a later manual save
// only knows the address.
func mergeSchema(existing, incoming deviceSchema) deviceSchema {
	if incoming.Hostname == "" {
		incoming.Hostname = existing.Hostname
	}
	if incoming.Name == "" {
		incoming.Name = existing.Name
	}
	if incoming.Source == string(domain.DiscoverySourceManual) && existing.Source != "" {
		incoming.Source = existing.Source
	}
	return incoming
}

func toSchema(device domain.Device) deviceSchema {
	return deviceSchema{
		Host:          device.Address.Host,
		Port:          device.Address.Port,
		Hostname:      device.Hostname,
		Name:          device.Name,
		Source:        string(device.Source),
		WiFiConnected: device.WiFiConnected,
		LastSeen:      formatTime(device.LastSeen),
	}
}

func fromSchema(device deviceSchema) domain.Device {
	port := device.Port
	if port <= 0 {
		port = domain.DefaultDevicePort
	}

	return domain.Device{
		Address:       domain.DeviceAddress{Host: device.Host, Port: port},
		Hostname:      device.Hostname,
		Name:          device.Name,
		Source:        domain.DiscoverySource(device.Source),
		WiFiConnected: device.WiFiConnected,
		LastSeen:      parseTime(device.LastSeen),
	}
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.Format(time.RFC3339)
}
