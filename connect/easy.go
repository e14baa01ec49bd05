package connect

import (
	"os"
	"path"
	"strings"

	beans "github.com/appuploader/appstore-connect-v3/model"
	"github.com/appuploader/appstore-connect-v3/util"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

/*
AddCertificateEasy runs the whole certificate dance in one call: generate a
keypair and CSR under certRoot, submit the signing request, then store
cert.pem and a passworded cert.p12 next to the key. The scratch directory is
renamed to the certificate id on success so re-runs never collide. Returns
the p12 path.

APPLE_PAY requires an EC key; every other type gets RSA 2048, matching what
the portal issues by hand.
*/
func (c *Client) AddCertificateEasy(certRoot string, email string, name string, password string, certificateType string) (string, error) {
	tempDir := path.Join(certRoot, uuid.New().String())
	var e error
	if certificateType == "APPLE_PAY" {
		e = util.CreateCertRequestEcc(tempDir, email, name)
	} else {
		e = util.CreateCertRequest(tempDir, email, name)
	}
	if e != nil {
		return "", e
	}
	csr, e := os.ReadFile(util.CSRPath(tempDir))
	if e != nil {
		return "", e
	}
	response, e := c.CreateCertificate(beans.NewCertificateCreateRequest(certificateType, CSRContentForRequest(csr)))
	if e != nil {
		if e2 := os.RemoveAll(tempDir); e2 != nil {
			log.Warnf("remove scratch dir fail %s", e2.Error())
		}
		return "", e
	}

	certDir := path.Join(certRoot, response.Data.Id)
	if e = os.Rename(tempDir, certDir); e != nil {
		certDir = tempDir
	}
	certPath := path.Join(certDir, "cert.pem")
	if e = util.WriteAppleCertContentToFile(response.Data.Attributes.CertificateContent, certPath); e != nil {
		return "", e
	}
	p12Path := path.Join(certDir, "cert.p12")
	if _, e = util.WriteP12File(util.PrivateKeyPath(certDir), certPath, p12Path, password); e != nil {
		return "", e
	}
	return p12Path, nil
}

// CSRContentForRequest normalizes CSR PEM text the way the API expects: the
// armor lines stay, carriage returns go.
func CSRContentForRequest(csrPEM []byte) string {
	return strings.ReplaceAll(string(csrPEM), "\r\n", "\n")
}
