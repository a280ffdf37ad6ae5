package settings

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"

	"github.com/mitchellh/mapstructure"
)

// Azure disk tier name prefixes, e.g. "p30-disk0" or "s4-scratch".
var (
	premiumDiskName  = regexp.MustCompile(`^[pP][0-9]+`)
	standardDiskName = regexp.MustCompile(`^[sS][0-9]+`)
)

// Decode materializes the typed settings from a validated configuration
// tree (the value returned by schema.Validate for the whole document).
// Defaults are applied before returning; Decode does not run CrossCheck.
func Decode(tree map[string]any) (*RemoteFS, error) {
	raw, ok := tree["remote_fs"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("document has no remote_fs mapping")
	}

	var rfs RemoteFS
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result: &rfs,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode remote_fs settings: %w", err)
	}

	rfs.applyDefaults()
	return &rfs, nil
}

// applyDefaults fills values the schema leaves optional. PublicIP defaults
// are handled by PublicIP.IsEnabled.
func (r *RemoteFS) applyDefaults() {
	for name, sc := range r.StorageClusters {
		if sc.FaultDomains == 0 {
			sc.FaultDomains = 2
		}
		if sc.ResourceGroup == "" {
			sc.ResourceGroup = r.ResourceGroup
		}
		r.StorageClusters[name] = sc
	}
	if r.ManagedDisks.ResourceGroup == "" {
		r.ManagedDisks.ResourceGroup = r.ResourceGroup
	}
}

// CrossCheck enforces constraints that span fields and cannot be expressed
// in the declarative schema. These mirror what the provisioning layer would
// otherwise reject at deployment time: an NFS file server is a single-VM
// premium setup, GlusterFS needs at least two bricks, a disk map must cover
// every VM ordinal exactly once, and tier-named managed disks must match
// their sku.
func (r *RemoteFS) CrossCheck() error {
	if err := r.ManagedDisks.crossCheck(); err != nil {
		return fmt.Errorf("managed disks: %w", err)
	}
	for _, name := range sortedClusterNames(r.StorageClusters) {
		if err := r.StorageClusters[name].crossCheck(); err != nil {
			return fmt.Errorf("storage cluster %s: %w", name, err)
		}
	}
	return nil
}

// crossCheck rejects disks whose tier-coded name contradicts the sku. Names
// without a tier prefix are allowed under either sku.
func (d ManagedDisks) crossCheck() error {
	for _, name := range d.DiskNames {
		if premiumDiskName.MatchString(name) && d.SKU == DiskSKUStandardLRS {
			return fmt.Errorf("disk %s carries a premium tier name but sku is %s", name, d.SKU)
		}
		if standardDiskName.MatchString(name) && d.SKU == DiskSKUPremiumLRS {
			return fmt.Errorf("disk %s carries a standard tier name but sku is %s", name, d.SKU)
		}
	}
	return nil
}

func (s StorageCluster) crossCheck() error {
	if s.VMCount < 1 {
		return fmt.Errorf("vm_count must be at least 1, got %d", s.VMCount)
	}
	switch s.FileServer.Type {
	case FileServerNFS:
		if s.VMCount != 1 {
			return fmt.Errorf("nfs file server requires vm_count 1, got %d", s.VMCount)
		}
	case FileServerGlusterFS:
		if s.VMCount < 2 {
			return fmt.Errorf("glusterfs file server requires vm_count of at least 2, got %d", s.VMCount)
		}
	}
	if s.FaultDomains > 3 {
		return fmt.Errorf("fault_domains must be 3 or fewer, got %d", s.FaultDomains)
	}
	return s.checkDiskMap()
}

// checkDiskMap requires one entry per VM with contiguous ordinals starting
// at zero, so every machine receives a disk assignment.
func (s StorageCluster) checkDiskMap() error {
	if len(s.VMDiskMap) == 0 {
		return nil
	}
	if len(s.VMDiskMap) != s.VMCount {
		return fmt.Errorf("vm_disk_map has %d entries for %d VMs", len(s.VMDiskMap), s.VMCount)
	}
	for i := 0; i < s.VMCount; i++ {
		entry, ok := s.VMDiskMap[strconv.Itoa(i)]
		if !ok {
			return fmt.Errorf("vm_disk_map is missing an entry for VM %d", i)
		}
		if len(entry.DiskArray) == 0 {
			return fmt.Errorf("vm_disk_map entry %d has an empty disk_array", i)
		}
		if entry.RaidLevel != nil && *entry.RaidLevel != 0 {
			return fmt.Errorf("vm_disk_map entry %d: unsupported raid_level %d", i, *entry.RaidLevel)
		}
	}
	return nil
}

// Cluster returns the named storage cluster settings.
func (r *RemoteFS) Cluster(name string) (StorageCluster, bool) {
	sc, ok := r.StorageClusters[name]
	return sc, ok
}

// ClusterNames returns the configured cluster names in sorted order.
func (r *RemoteFS) ClusterNames() []string {
	return sortedClusterNames(r.StorageClusters)
}

func sortedClusterNames(m map[string]StorageCluster) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
