/*
Package remotefs validates configuration for provisioning remote filesystem
clusters: managed disks, storage-cluster VM groups, networking and
NFS/GlusterFS/Samba file-serving options.

The library is two small pieces. A schema registry (pkg/schema) holds the
declarative rule tree for the remote_fs document — field names, types,
required flags, enumerations, regex-keyed maps for user-named clusters and
disk ordinals. A validating loader walks raw input against it and produces
either a strongly typed configuration object (pkg/settings) or a list of
structured validation errors, each tagged with the dotted path of the field
it concerns.

# Usage

	rfs, err := remotefs.Load("config.yaml")
	if err != nil {
	    for _, v := range schema.Violations(err) {
	        fmt.Printf("%s: %s\n", v.Path, v.Detail)
	    }
	    return err
	}
	for _, name := range rfs.ClusterNames() {
	    // hand the cluster settings to the provisioning layer
	}

All violations in a document are reported together in one pass, so a broken
configuration can be fixed in a single edit-validate cycle.

Provisioning itself — cloud API calls, SSH key management, mounting, NFS and
Samba administration — is deliberately out of scope; those layers consume
the validated settings this package produces.
*/
package remotefs
