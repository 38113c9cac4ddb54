// Package hclparams reads node construction parameters from HCL documents.
//
// A document is a sequence of `node`, `comment`, `directive` and `block`
// blocks. Each block's attributes form one parameter bag, handed unchanged to
// the matching node contract, so a document can carry both valid and invalid
// parameter sets. Only `block` may contain further blocks; the enclosing block
// becomes the ancestor of the nested ones.
//
//	directive {
//	  name       = "Listen"
//	  parameters = [80]
//	  filepath   = "/etc/apache2/ports.conf"
//	}
//
//	block {
//	  name       = "VirtualHost"
//	  parameters = ["*:80"]
//	  filepath   = "/etc/apache2/sites-enabled/000-default.conf"
//
//	  comment {
//	    metadata = {}
//	  }
//	}
package hclparams
