package settings

// RemoteFS is the typed form of a validated remote_fs document. It uses
// "mapstructure" tags so it can be materialized straight from the typed tree
// the validator produces.
type RemoteFS struct {
	ResourceGroup   string                    `mapstructure:"resource_group"`
	Location        string                    `mapstructure:"location"`
	ManagedDisks    ManagedDisks              `mapstructure:"managed_disks"`
	StorageClusters map[string]StorageCluster `mapstructure:"storage_clusters"`
}

// Managed disk skus accepted by the schema.
const (
	DiskSKUStandardLRS = "standard_lrs"
	DiskSKUPremiumLRS  = "premium_lrs"
)

// ManagedDisks describes the block-storage volumes to provision.
type ManagedDisks struct {
	ResourceGroup string   `mapstructure:"resource_group"`
	SKU           string   `mapstructure:"sku"`
	DiskSizeGB    int      `mapstructure:"disk_size_gb"`
	DiskNames     []string `mapstructure:"disk_names"`
}

// StorageCluster is one named group of VMs exposing a shared filesystem.
type StorageCluster struct {
	ResourceGroup         string                  `mapstructure:"resource_group"`
	HostnamePrefix        string                  `mapstructure:"hostname_prefix"`
	SSH                   SSH                     `mapstructure:"ssh"`
	PublicIP              PublicIP                `mapstructure:"public_ip"`
	VirtualNetwork        VirtualNetwork          `mapstructure:"virtual_network"`
	NetworkSecurity       NetworkSecurity         `mapstructure:"network_security"`
	FileServer            FileServer              `mapstructure:"file_server"`
	VMCount               int                     `mapstructure:"vm_count"`
	VMSize                string                  `mapstructure:"vm_size"`
	FaultDomains          int                     `mapstructure:"fault_domains"`
	AcceleratedNetworking bool                    `mapstructure:"accelerated_networking"`
	VMDiskMap             map[string]DiskMapEntry `mapstructure:"vm_disk_map"`
}

// SSH holds the administrative login configuration for the cluster VMs.
type SSH struct {
	Username                string `mapstructure:"username"`
	SSHPublicKey            string `mapstructure:"ssh_public_key"`
	SSHPublicKeyData        string `mapstructure:"ssh_public_key_data"`
	SSHPrivateKey           string `mapstructure:"ssh_private_key"`
	GeneratedFileExportPath string `mapstructure:"generated_file_export_path"`
}

// PublicIP controls whether cluster VMs receive public addresses. Enabled is
// a pointer so an absent value can default to true.
type PublicIP struct {
	Enabled *bool `mapstructure:"enabled"`
	Static  bool  `mapstructure:"static"`
}

// IsEnabled reports the effective value: public IPs are on unless the
// configuration disables them explicitly.
func (p PublicIP) IsEnabled() bool {
	return p.Enabled == nil || *p.Enabled
}

// VirtualNetwork names the network the cluster joins, with an optional
// subnet block.
type VirtualNetwork struct {
	Name          string  `mapstructure:"name"`
	ResourceGroup string  `mapstructure:"resource_group"`
	ExistingOK    bool    `mapstructure:"existing_ok"`
	AddressSpace  string  `mapstructure:"address_space"`
	Subnet        *Subnet `mapstructure:"subnet"`
}

// Subnet is the cluster subnet; when the block is present both fields are
// schema-required.
type Subnet struct {
	Name          string `mapstructure:"name"`
	AddressPrefix string `mapstructure:"address_prefix"`
}

// NetworkSecurity lists allowed source address prefixes per well-known
// service, plus arbitrarily named custom inbound rules.
type NetworkSecurity struct {
	SSH                []string               `mapstructure:"ssh"`
	NFS                []string               `mapstructure:"nfs"`
	GlusterFS          []string               `mapstructure:"glusterfs"`
	SMB                []string               `mapstructure:"smb"`
	CustomInboundRules map[string]InboundRule `mapstructure:"custom_inbound_rules"`
}

// InboundRule is one custom network security rule.
type InboundRule struct {
	DestinationPortRange string   `mapstructure:"destination_port_range"`
	SourceAddressPrefix  []string `mapstructure:"source_address_prefix"`
	Protocol             string   `mapstructure:"protocol"`
}

// File server types accepted by the schema.
const (
	FileServerNFS       = "nfs"
	FileServerGlusterFS = "glusterfs"
)

// FileServer is the NFS/GlusterFS service layered on top of the cluster,
// with optional Samba export of the same mountpoint.
type FileServer struct {
	Type          string        `mapstructure:"type"`
	Mountpoint    string        `mapstructure:"mountpoint"`
	MountOptions  []string      `mapstructure:"mount_options"`
	ServerOptions ServerOptions `mapstructure:"server_options"`
	Samba         *Samba        `mapstructure:"samba"`
}

// ServerOptions holds the per-protocol server settings; only the block
// matching FileServer.Type is validated and meaningful.
type ServerOptions struct {
	// NFS maps a client host spec (e.g. "*") to its export options.
	NFS map[string][]string `mapstructure:"nfs"`
	// GlusterFS holds volume settings and free-form tuning options.
	GlusterFS map[string]string `mapstructure:"glusterfs"`
}

// Samba configures an SMB share over the file server mountpoint.
type Samba struct {
	ShareName     string        `mapstructure:"share_name"`
	Account       *SambaAccount `mapstructure:"account"`
	ReadOnly      bool          `mapstructure:"read_only"`
	CreateMask    string        `mapstructure:"create_mask"`
	DirectoryMask string        `mapstructure:"directory_mask"`
}

// SambaAccount is the share login.
type SambaAccount struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	UID      int    `mapstructure:"uid"`
	GID      int    `mapstructure:"gid"`
}

// DiskMapEntry assigns managed disks to one VM ordinal and describes the
// filesystem laid over them. RaidLevel is a pointer because 0 is a
// meaningful value (striping); nil means no RAID.
type DiskMapEntry struct {
	DiskArray  []string `mapstructure:"disk_array"`
	Filesystem string   `mapstructure:"filesystem"`
	RaidLevel  *int     `mapstructure:"raid_level"`
}
