package remotefs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/remotefs"
	"github.com/aretw0/remotefs/pkg/schema"
)

const fullConfig = `remote_fs:
  resource_group: my-rg
  location: eastus
  managed_disks:
    sku: premium_lrs
    disk_size_gb: 1024
    disk_names:
      - p30-disk0a
      - p30-disk1a
  storage_clusters:
    mystoragecluster:
      hostname_prefix: mystoragecluster
      ssh:
        username: shipyard
        generated_file_export_path: null_keys
      public_ip:
        enabled: true
        static: false
      virtual_network:
        name: myvnet
        address_space: 10.0.0.0/16
        subnet:
          name: my-server-subnet
          address_prefix: 10.0.0.0/24
      network_security:
        ssh:
          - "*"
        nfs:
          - 1.2.3.0/24
      file_server:
        type: nfs
        mountpoint: /data
        mount_options:
          - noatime
          - nodiratime
        server_options:
          nfs:
            "*":
              - rw
              - sync
              - root_squash
              - no_subtree_check
      vm_count: 1
      vm_size: STANDARD_F16S
      fault_domains: 2
      accelerated_networking: false
      vm_disk_map:
        "0":
          disk_array:
            - p30-disk0a
            - p30-disk1a
          filesystem: btrfs
          raid_level: 0
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_FullConfig(t *testing.T) {
	rfs, err := remotefs.Load(writeConfig(t, fullConfig))
	require.NoError(t, err)

	assert.Equal(t, "eastus", rfs.Location)
	assert.Equal(t, []string{"p30-disk0a", "p30-disk1a"}, rfs.ManagedDisks.DiskNames)

	sc, ok := rfs.Cluster("mystoragecluster")
	require.True(t, ok)
	assert.Equal(t, "shipyard", sc.SSH.Username)
	require.NotNil(t, sc.VirtualNetwork.Subnet)
	assert.Equal(t, "10.0.0.0/24", sc.VirtualNetwork.Subnet.AddressPrefix)
	assert.Equal(t, []string{"rw", "sync", "root_squash", "no_subtree_check"}, sc.FileServer.ServerOptions.NFS["*"])
	require.Contains(t, sc.VMDiskMap, "0")
	require.NotNil(t, sc.VMDiskMap["0"].RaidLevel)
	assert.Equal(t, 0, *sc.VMDiskMap["0"].RaidLevel)
}

func TestLoad_ReportsEveryViolation(t *testing.T) {
	const broken = `remote_fs:
  storage_clusters:
    c1:
      hostname_prefix: h
      ssh:
      virtual_network:
        name: vnet1
      vm_count: many
      vm_size: Standard_D2
`
	_, err := remotefs.Load(writeConfig(t, broken))
	require.Error(t, err)

	vs := schema.Violations(err)
	require.Len(t, vs, 3)
	paths := make([]string, 0, len(vs))
	for _, v := range vs {
		paths = append(paths, v.Path)
	}
	assert.Contains(t, paths, "remote_fs.location")
	assert.Contains(t, paths, "remote_fs.storage_clusters.c1.ssh.username")
	assert.Contains(t, paths, "remote_fs.storage_clusters.c1.vm_count")
}

func TestLoad_CrossCheckAfterValidation(t *testing.T) {
	// Schema-valid but semantically broken: an NFS file server spread
	// across three VMs.
	const invalid = `remote_fs:
  location: eastus
  storage_clusters:
    c1:
      hostname_prefix: h
      ssh:
        username: u
      virtual_network:
        name: vnet1
      file_server:
        type: nfs
        mountpoint: /data
      vm_count: 3
      vm_size: Standard_D2
`
	_, err := remotefs.Load(writeConfig(t, invalid))
	require.Error(t, err)
	assert.Nil(t, schema.Violations(err), "cross-check failures are not schema violations")
	assert.Contains(t, err.Error(), "vm_count 1")
}

func TestLoad_IgnoreUnknown(t *testing.T) {
	const extra = `remote_fs:
  location: eastus
  future_option: true
`
	_, err := remotefs.Load(writeConfig(t, extra))
	require.Error(t, err)

	rfs, err := remotefs.Load(writeConfig(t, extra), schema.WithIgnoreUnknown())
	require.NoError(t, err)
	assert.Equal(t, "eastus", rfs.Location)
}

func TestParse_BadYAML(t *testing.T) {
	_, err := remotefs.Parse([]byte("remote_fs: [unclosed"))
	require.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := remotefs.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
