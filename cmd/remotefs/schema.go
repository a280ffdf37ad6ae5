package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/remotefs/internal/render"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Show the recognized remote_fs configuration options",
	Run: func(cmd *cobra.Command, args []string) {
		out, err := render.Markdown(schemaReference)
		if err != nil {
			// Fall back to the raw markdown on terminals glamour cannot handle.
			fmt.Print(schemaReference)
			return
		}
		fmt.Print(out)
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}

const schemaReference = `# remote_fs configuration

Top-level keys (* = required):

| Key | Type | Notes |
|-----|------|-------|
| resource_group | str | default resource group for all resources |
| location* | str | cloud region |
| managed_disks | map | resource_group, sku (standard_lrs, premium_lrs), disk_size_gb, disk_names |
| storage_clusters | map | one entry per cluster, keyed by any name |

Per storage cluster (* = required):

| Key | Type | Notes |
|-----|------|-------|
| resource_group | str | defaults to the top-level resource group |
| hostname_prefix* | str | VM hostname prefix |
| ssh* | map | username* plus optional key material paths |
| public_ip | map | enabled (default true), static |
| virtual_network* | map | name*, optional subnet (name*, address_prefix*) |
| network_security | map | ssh/nfs/glusterfs/smb source lists, custom_inbound_rules |
| file_server | map | type* (nfs, glusterfs), mountpoint*, mount_options, server_options, samba |
| vm_count* | int | nfs requires 1, glusterfs at least 2 |
| vm_size* | str | VM size name |
| fault_domains | int | default 2, at most 3 |
| accelerated_networking | bool | |
| vm_disk_map | map | keyed by VM ordinal: disk_array*, filesystem* (btrfs, ext4, ext3, ext2), raid_level |

server_options takes the shape matching the declared file server type: for
nfs, a map of client host specs to export option lists; for glusterfs,
volume_name, volume_type, transport (tcp) and free-form tuning options.
`
